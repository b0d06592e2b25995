package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/taskforge/todo-system/internal/api/metrics"
	"github.com/taskforge/todo-system/internal/core/auth"
	"github.com/taskforge/todo-system/internal/core/domain"
	"github.com/taskforge/todo-system/internal/core/ports"
)

// AuthService implements password login and token issuance.
type AuthService struct {
	users  ports.UserRepository
	hasher *auth.Hasher
	codec  *auth.TokenCodec
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher *auth.Hasher, codec *auth.TokenCodec, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, codec: codec, log: log}
}

// Login verifies the email/password pair and returns a signed access token
// whose subject is the user's id. An unknown email and a wrong password are
// indistinguishable to the caller; the inactive check runs only after the
// credentials themselves are proven good.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		metrics.LoginsTotal.WithLabelValues("inactive").Inc()
		return "", nil, domain.ErrInactiveUser
	}

	token, err := s.codec.Issue(strconv.FormatInt(user.ID, 10), 0, 0)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Int64("user_id", user.ID).Msg("login succeeded")
	return token, user, nil
}
