package ports

import (
	"context"

	"github.com/taskforge/todo-system/internal/core/domain"
)

// TaskFields is the field set for partial task updates. A nil pointer
// leaves the stored value untouched.
type TaskFields struct {
	Title       *string
	Description *string
	IsDone      *bool
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	// FindByID returns domain.ErrTaskNotFound when no task has the id.
	FindByID(ctx context.Context, id int64) (*domain.Task, error)
	// Insert assigns a fresh numeric id and returns the stored record.
	Insert(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// Update applies the non-nil fields and returns the refreshed record.
	Update(ctx context.Context, id int64, fields TaskFields) (*domain.Task, error)
	// Delete removes the task and returns the deleted record.
	Delete(ctx context.Context, id int64) (*domain.Task, error)
	// List returns a page over all tasks ordered by id.
	List(ctx context.Context, skip, limit int64) ([]*domain.Task, error)
	// ListByOwner returns a page over one owner's tasks ordered by id.
	ListByOwner(ctx context.Context, ownerID int64, skip, limit int64) ([]*domain.Task, error)
}
