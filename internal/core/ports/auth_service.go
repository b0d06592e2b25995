package ports

import (
	"context"

	"github.com/taskforge/todo-system/internal/core/domain"
)

// AuthService authenticates credentials and issues bearer tokens.
type AuthService interface {
	// Login verifies the email/password pair and returns a signed access
	// token for the user. Unknown email and wrong password are both
	// domain.ErrInvalidCredentials; a correct pair on a deactivated
	// account is domain.ErrInactiveUser.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// AuthResolver turns a raw bearer token into the persisted user it
// authenticates. Implementations are invoked once per request by the auth
// middleware; the resolved user rides the request context from there on.
type AuthResolver interface {
	Resolve(ctx context.Context, raw string) (*domain.User, error)
	// ResolveActive additionally requires is_active, failing with
	// domain.ErrInactiveUser otherwise.
	ResolveActive(ctx context.Context, raw string) (*domain.User, error)
}
