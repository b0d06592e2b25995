package ports

import (
	"context"

	"github.com/taskforge/todo-system/internal/core/domain"
)

// UserFields is the persistence-level field set for partial user updates.
// A nil pointer leaves the stored value untouched. Passwords never reach
// this layer raw: services hash before filling PasswordHash.
type UserFields struct {
	FullName     *string
	Email        *string
	PasswordHash *string
	IsActive     *bool
	IsSuperuser  *bool
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// FindByID returns domain.ErrUserNotFound when no user has the id.
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByEmail returns domain.ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Insert assigns a fresh numeric id and returns the stored record.
	// Returns domain.ErrEmailExists when the email is already taken.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update applies the non-nil fields and returns the refreshed record.
	Update(ctx context.Context, id int64, fields UserFields) (*domain.User, error)
	// Delete removes the user and returns the deleted record.
	Delete(ctx context.Context, id int64) (*domain.User, error)
	// List returns a page of users ordered by id.
	List(ctx context.Context, skip, limit int64) ([]*domain.User, error)
}
