package domain

import "errors"

// Sentinel errors form the service-wide taxonomy. Services and repositories
// return (or wrap) these; the HTTP layer maps them to status codes in one
// place. Anything outside this list renders as an internal error.
var (
	// ErrInvalidCredentials covers a bad email/password pair at login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInactiveUser covers valid credentials on a deactivated account.
	ErrInactiveUser = errors.New("inactive user")

	// Token decode faults. All three surface to clients as the same
	// "could not validate credentials" forbidden response, but stay
	// distinguishable internally.
	ErrTokenInvalid     = errors.New("token invalid")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenNotYetValid = errors.New("token not yet valid")

	ErrUserNotFound = errors.New("user not found")
	ErrTaskNotFound = errors.New("task not found")

	// ErrForbidden covers ownership and privilege violations, including
	// probes against resources the actor cannot see (never ErrUserNotFound
	// or ErrTaskNotFound in that case, so existence does not leak).
	ErrForbidden = errors.New("insufficient privileges")

	// ErrEmailExists covers a registration or update against a taken email.
	ErrEmailExists = errors.New("email already registered")

	// ErrValidation covers obviously invalid states the core rejects on
	// its own (empty email on creation, blank password). Field-level
	// validation belongs to the transport layer.
	ErrValidation = errors.New("invalid input")
)
