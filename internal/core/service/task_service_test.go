package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/taskforge/todo-system/internal/core/domain"
	"github.com/taskforge/todo-system/internal/core/ports"
)

type stubTaskRepo struct {
	tasks  map[int64]*domain.Task
	nextID int64
}

func newStubTaskRepo(tasks ...*domain.Task) *stubTaskRepo {
	r := &stubTaskRepo{tasks: make(map[int64]*domain.Task)}
	for _, task := range tasks {
		clone := *task
		r.tasks[task.ID] = &clone
		if task.ID > r.nextID {
			r.nextID = task.ID
		}
	}
	return r
}

func (r *stubTaskRepo) FindByID(_ context.Context, id int64) (*domain.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	clone := *task
	return &clone, nil
}

func (r *stubTaskRepo) Insert(_ context.Context, task *domain.Task) (*domain.Task, error) {
	r.nextID++
	clone := *task
	clone.ID = r.nextID
	r.tasks[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTaskRepo) Update(_ context.Context, id int64, fields ports.TaskFields) (*domain.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	if fields.Title != nil {
		task.Title = *fields.Title
	}
	if fields.Description != nil {
		task.Description = *fields.Description
	}
	if fields.IsDone != nil {
		task.IsDone = *fields.IsDone
	}
	clone := *task
	return &clone, nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id int64) (*domain.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return task, nil
}

func (r *stubTaskRepo) List(_ context.Context, _, _ int64) ([]*domain.Task, error) {
	out := make([]*domain.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		clone := *task
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubTaskRepo) ListByOwner(_ context.Context, ownerID int64, _, _ int64) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, task := range r.tasks {
		if task.OwnerID == ownerID {
			clone := *task
			out = append(out, &clone)
		}
	}
	return out, nil
}

func newTaskService(tasks *stubTaskRepo, users *stubUserRepo) *TaskService {
	return NewTaskService(tasks, users, zerolog.Nop())
}

func TestTaskService_Create_DefaultOwner(t *testing.T) {
	actor := &domain.User{ID: 1, Email: "a@example.com", IsActive: true}
	svc := newTaskService(newStubTaskRepo(), newStubUserRepo(actor))

	task, err := svc.Create(context.Background(), actor, ports.CreateTaskInput{Title: "buy milk"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if task.OwnerID != 1 {
		t.Fatalf("expected owner 1, got %d", task.OwnerID)
	}
	if task.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if task.IsDone {
		t.Fatalf("fresh tasks start not done")
	}
}

func TestTaskService_Create_OnBehalf(t *testing.T) {
	actor := &domain.User{ID: 1, Email: "a@example.com", IsActive: true}
	target := &domain.User{ID: 2, Email: "b@example.com", IsActive: true}
	super := &domain.User{ID: 3, Email: "root@example.com", IsActive: true, IsSuperuser: true}
	users := newStubUserRepo(actor, target, super)
	svc := newTaskService(newStubTaskRepo(), users)
	ctx := context.Background()

	if _, err := svc.Create(ctx, actor, ports.CreateTaskInput{Title: "not mine", OwnerID: 2}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	task, err := svc.Create(ctx, super, ports.CreateTaskInput{Title: "delegated", OwnerID: 2})
	if err != nil {
		t.Fatalf("superuser on-behalf failed: %v", err)
	}
	if task.OwnerID != 2 {
		t.Fatalf("expected owner 2, got %d", task.OwnerID)
	}

	if _, err := svc.Create(ctx, super, ports.CreateTaskInput{Title: "for ghost", OwnerID: 99}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestTaskService_GetByID_Ownership(t *testing.T) {
	owner := &domain.User{ID: 1, Email: "a@example.com", IsActive: true}
	other := &domain.User{ID: 2, Email: "b@example.com", IsActive: true}
	super := &domain.User{ID: 3, Email: "root@example.com", IsActive: true, IsSuperuser: true}
	tasks := newStubTaskRepo(&domain.Task{ID: 10, Title: "mine", OwnerID: 1})
	svc := newTaskService(tasks, newStubUserRepo(owner, other, super))
	ctx := context.Background()

	if _, err := svc.GetByID(ctx, owner, 10); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if _, err := svc.GetByID(ctx, super, 10); err != nil {
		t.Fatalf("superuser read failed: %v", err)
	}
	if _, err := svc.GetByID(ctx, other, 10); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// A missing task looks forbidden to a non-superuser and not-found to a
	// superuser.
	if _, err := svc.GetByID(ctx, other, 99); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.GetByID(ctx, super, 99); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_List_Scoping(t *testing.T) {
	owner := &domain.User{ID: 1, Email: "a@example.com", IsActive: true}
	super := &domain.User{ID: 3, Email: "root@example.com", IsActive: true, IsSuperuser: true}
	tasks := newStubTaskRepo(
		&domain.Task{ID: 10, Title: "mine", OwnerID: 1},
		&domain.Task{ID: 11, Title: "theirs", OwnerID: 2},
	)
	svc := newTaskService(tasks, newStubUserRepo(owner, super))
	ctx := context.Background()

	own, err := svc.List(ctx, owner, 0, 100)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(own) != 1 || own[0].OwnerID != 1 {
		t.Fatalf("expected only own tasks, got %+v", own)
	}

	all, err := svc.List(ctx, super, 0, 100)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected all tasks for superuser, got %d", len(all))
	}
}

func TestTaskService_Update_Ownership(t *testing.T) {
	owner := &domain.User{ID: 1, Email: "a@example.com", IsActive: true}
	other := &domain.User{ID: 2, Email: "b@example.com", IsActive: true}
	tasks := newStubTaskRepo(&domain.Task{ID: 10, Title: "mine", OwnerID: 1})
	svc := newTaskService(tasks, newStubUserRepo(owner, other))
	ctx := context.Background()

	done := true
	if _, err := svc.Update(ctx, other, 10, ports.TaskFields{IsDone: &done}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := svc.Update(ctx, owner, 10, ports.TaskFields{IsDone: &done})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !updated.IsDone {
		t.Fatalf("expected task marked done")
	}
}

func TestTaskService_Delete_Ownership(t *testing.T) {
	owner := &domain.User{ID: 1, Email: "a@example.com", IsActive: true}
	other := &domain.User{ID: 2, Email: "b@example.com", IsActive: true}
	tasks := newStubTaskRepo(&domain.Task{ID: 10, Title: "mine", OwnerID: 1})
	svc := newTaskService(tasks, newStubUserRepo(owner, other))
	ctx := context.Background()

	if _, err := svc.Delete(ctx, other, 10); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	deleted, err := svc.Delete(ctx, owner, 10)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted.ID != 10 {
		t.Fatalf("expected deleted task 10, got %d", deleted.ID)
	}
	if _, err := tasks.FindByID(ctx, 10); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected task gone, got %v", err)
	}
}
