package ports

import (
	"context"

	"github.com/taskforge/todo-system/internal/core/domain"
)

// CreateUserInput carries all data needed to create a user. Registration
// fills only the first three fields; IsActive and IsSuperuser default to
// false and exist for administrative creation paths.
type CreateUserInput struct {
	FullName    string
	Email       string
	Password    string
	IsActive    bool
	IsSuperuser bool
}

// UpdateUserInput is the service-level field set for user updates. The
// transport layer normalizes full (PUT) and partial (PATCH) payloads into
// this one shape; a nil pointer means "leave unchanged". Password, when
// set, is re-hashed by the service before it touches the store.
type UpdateUserInput struct {
	FullName    *string
	Email       *string
	Password    *string
	IsActive    *bool
	IsSuperuser *bool
}

// UserService defines use-case operations for users. Operations taking an
// actor enforce the self-or-superuser rule.
type UserService interface {
	Register(ctx context.Context, in CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, actor *domain.User, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, actor *domain.User, skip, limit int64) ([]*domain.User, error)
	Update(ctx context.Context, actor *domain.User, id int64, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor *domain.User, id int64) (*domain.User, error)
}
