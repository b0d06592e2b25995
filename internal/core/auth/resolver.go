package auth

import (
	"context"
	"fmt"
	"strconv"

	"github.com/taskforge/todo-system/internal/core/domain"
	"github.com/taskforge/todo-system/internal/core/ports"
)

// Resolver turns a raw bearer token into the persisted user it
// authenticates. Decode faults and an unparsable subject are forbidden-
// class token errors; a user missing after a valid decode is
// domain.ErrUserNotFound. That split is deliberate and mirrors the
// public API contract.
type Resolver struct {
	codec *TokenCodec
	users ports.UserRepository
}

func NewResolver(codec *TokenCodec, users ports.UserRepository) *Resolver {
	return &Resolver{codec: codec, users: users}
}

// Resolve decodes raw and loads the user named by its subject claim.
func (r *Resolver) Resolve(ctx context.Context, raw string) (*domain.User, error) {
	claims, err := r.codec.Decode(raw)
	if err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject %q", domain.ErrTokenInvalid, claims.Subject)
	}

	user, err := r.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ResolveActive is Resolve plus the is_active check.
func (r *Resolver) ResolveActive(ctx context.Context, raw string) (*domain.User, error) {
	user, err := r.Resolve(ctx, raw)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	return user, nil
}
