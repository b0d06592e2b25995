package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskforge/todo-system/internal/api/metrics"
	"github.com/taskforge/todo-system/internal/core/auth"
	"github.com/taskforge/todo-system/internal/core/domain"
	"github.com/taskforge/todo-system/internal/core/policy"
	"github.com/taskforge/todo-system/internal/core/ports"
)

// UserService implements user lifecycle use-cases on top of the user
// repository, the credential hasher and the async notifier.
type UserService struct {
	users    ports.UserRepository
	hasher   *auth.Hasher
	notifier ports.NotificationQueue
	log      zerolog.Logger
}

func NewUserService(users ports.UserRepository, hasher *auth.Hasher, notifier ports.NotificationQueue, log zerolog.Logger) *UserService {
	return &UserService{users: users, hasher: hasher, notifier: notifier, log: log}
}

// Register creates a user. Accounts start inactive and unprivileged unless
// the input says otherwise (administrative creation paths only). The raw
// password is hashed here and never stored.
func (s *UserService) Register(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}

	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Insert(ctx, &domain.User{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: hash,
		IsActive:     in.IsActive,
		IsSuperuser:  in.IsSuperuser,
	})
	if err != nil {
		return nil, err
	}

	metrics.UsersCreatedTotal.Inc()
	s.log.Info().Int64("user_id", created.ID).Msg("user registered")
	s.notifier.Enqueue(ports.Notification{
		UserID: created.ID,
		Email:  created.Email,
		Kind:   ports.NotificationWelcome,
		At:     time.Now().UTC(),
	})
	return created, nil
}

// GetByID returns the user, gated by the self-or-superuser rule.
func (s *UserService) GetByID(ctx context.Context, actor *domain.User, id int64) (*domain.User, error) {
	target, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CheckOwned(actor, id, target != nil, domain.ErrUserNotFound); err != nil {
		return nil, err
	}
	return target, nil
}

// GetByEmail is an internal lookup (login flow); it applies no policy.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, email)
}

// List enumerates users; superusers only.
func (s *UserService) List(ctx context.Context, actor *domain.User, skip, limit int64) ([]*domain.User, error) {
	if err := policy.CanListUsers(actor); err != nil {
		return nil, err
	}
	return s.users.List(ctx, skip, limit)
}

// Update applies a field set to the target user. Beyond the ownership
// rule it blocks privilege escalation, re-hashes any new password, and
// forces deactivation when a non-superuser changes the email (the account
// must re-verify before it can authenticate again).
func (s *UserService) Update(ctx context.Context, actor *domain.User, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	target, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CheckOwned(actor, id, target != nil, domain.ErrUserNotFound); err != nil {
		return nil, err
	}
	if err := policy.CheckUserUpdate(actor, in.IsSuperuser); err != nil {
		return nil, err
	}

	fields := ports.UserFields{
		FullName:    in.FullName,
		Email:       in.Email,
		IsActive:    in.IsActive,
		IsSuperuser: in.IsSuperuser,
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		fields.PasswordHash = &hash
	}

	deactivated := policy.DeactivateOnEmailChange(actor, target.Email, in.Email)
	if deactivated {
		inactive := false
		fields.IsActive = &inactive
	}

	updated, err := s.users.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	if deactivated {
		s.log.Info().Int64("user_id", id).Msg("email changed, account deactivated pending re-verification")
		s.notifier.Enqueue(ports.Notification{
			UserID: updated.ID,
			Email:  updated.Email,
			Kind:   ports.NotificationReverifyEmail,
			At:     time.Now().UTC(),
		})
	}
	return updated, nil
}

// Delete removes the target user (hard delete), gated by the
// self-or-superuser rule.
func (s *UserService) Delete(ctx context.Context, actor *domain.User, id int64) (*domain.User, error) {
	target, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CheckOwned(actor, id, target != nil, domain.ErrUserNotFound); err != nil {
		return nil, err
	}
	return s.users.Delete(ctx, id)
}

// fetch loads the target, translating "not found" into (nil, nil) so the
// policy decides what the actor learns about a missing record.
func (s *UserService) fetch(ctx context.Context, id int64) (*domain.User, error) {
	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return target, nil
}
