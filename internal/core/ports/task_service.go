package ports

import (
	"context"

	"github.com/taskforge/todo-system/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a task. OwnerID zero
// means "the actor"; a non-zero OwnerID different from the actor requires
// superuser privilege.
type CreateTaskInput struct {
	Title       string
	Description string
	IsDone      bool
	OwnerID     int64
}

// TaskService defines use-case operations for tasks. Every operation
// enforces the ownership rules against the given actor.
type TaskService interface {
	Create(ctx context.Context, actor *domain.User, in CreateTaskInput) (*domain.Task, error)
	GetByID(ctx context.Context, actor *domain.User, id int64) (*domain.Task, error)
	List(ctx context.Context, actor *domain.User, skip, limit int64) ([]*domain.Task, error)
	Update(ctx context.Context, actor *domain.User, id int64, fields TaskFields) (*domain.Task, error)
	Delete(ctx context.Context, actor *domain.User, id int64) (*domain.Task, error)
}
