package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/taskforge/todo-system/internal/api/metrics"
	"github.com/taskforge/todo-system/internal/core/domain"
	"github.com/taskforge/todo-system/internal/core/policy"
	"github.com/taskforge/todo-system/internal/core/ports"
)

// TaskService implements task lifecycle use-cases. The user repository is
// only consulted to confirm that an on-behalf owner exists.
type TaskService struct {
	tasks ports.TaskRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository, log zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, users: users, log: log}
}

// Create inserts a task. With no owner in the input the task belongs to
// the actor; naming another owner requires superuser privilege and an
// existing target user.
func (s *TaskService) Create(ctx context.Context, actor *domain.User, in ports.CreateTaskInput) (*domain.Task, error) {
	ownerID := in.OwnerID
	if ownerID == 0 {
		ownerID = actor.ID
	}

	if ownerID != actor.ID {
		ownerExists := true
		if _, err := s.users.FindByID(ctx, ownerID); err != nil {
			if !errors.Is(err, domain.ErrUserNotFound) {
				return nil, err
			}
			ownerExists = false
		}
		if err := policy.CheckCreateOnBehalf(actor, ownerID, ownerExists); err != nil {
			return nil, err
		}
	}

	created, err := s.tasks.Insert(ctx, &domain.Task{
		Title:       in.Title,
		Description: in.Description,
		IsDone:      in.IsDone,
		OwnerID:     ownerID,
	})
	if err != nil {
		return nil, err
	}

	metrics.TasksCreatedTotal.Inc()
	s.log.Info().Int64("task_id", created.ID).Int64("owner_id", ownerID).Msg("task created")
	return created, nil
}

// GetByID returns the task, gated by the self-or-superuser rule on its
// owner.
func (s *TaskService) GetByID(ctx context.Context, actor *domain.User, id int64) (*domain.Task, error) {
	task, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwned(actor, task); err != nil {
		return nil, err
	}
	return task, nil
}

// List returns a page of tasks: all of them for superusers, only the
// actor's own otherwise.
func (s *TaskService) List(ctx context.Context, actor *domain.User, skip, limit int64) ([]*domain.Task, error) {
	if policy.CanListAllTasks(actor) {
		return s.tasks.List(ctx, skip, limit)
	}
	return s.tasks.ListByOwner(ctx, actor.ID, skip, limit)
}

// Update applies a field set to the task, gated by ownership.
func (s *TaskService) Update(ctx context.Context, actor *domain.User, id int64, fields ports.TaskFields) (*domain.Task, error) {
	task, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwned(actor, task); err != nil {
		return nil, err
	}
	return s.tasks.Update(ctx, id, fields)
}

// Delete removes the task (hard delete), gated by ownership.
func (s *TaskService) Delete(ctx context.Context, actor *domain.User, id int64) (*domain.Task, error) {
	task, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwned(actor, task); err != nil {
		return nil, err
	}
	return s.tasks.Delete(ctx, id)
}

func (s *TaskService) checkOwned(actor *domain.User, task *domain.Task) error {
	var ownerID int64
	if task != nil {
		ownerID = task.OwnerID
	}
	return policy.CheckOwned(actor, ownerID, task != nil, domain.ErrTaskNotFound)
}

// fetch loads the task, translating "not found" into (nil, nil) so the
// policy decides what the actor learns about a missing record.
func (s *TaskService) fetch(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return task, nil
}
