package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskforge/todo-system/internal/core/domain"
)

// Claims is the decoded view of an access token. Validity is purely a
// function of the signature and timestamps; no server-side session record
// exists.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
	NotBefore time.Time // zero when the token carries no nbf claim
}

// TokenCodec signs and verifies access tokens. Only symmetric HS256 is
// supported; the algorithm is pinned at construction and enforced again
// on every decode.
type TokenCodec struct {
	secret     []byte
	method     jwt.SigningMethod
	defaultTTL time.Duration
}

// NewTokenCodec builds a codec for the given secret and algorithm
// identifier ("HS256"). The defaultTTL applies when Issue is called with
// a zero ttl.
func NewTokenCodec(secret, algorithm string, defaultTTL time.Duration) (*TokenCodec, error) {
	if secret == "" {
		return nil, errors.New("token codec: empty secret")
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil || method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("token codec: unsupported algorithm %q", algorithm)
	}
	if defaultTTL <= 0 {
		defaultTTL = time.Hour
	}
	return &TokenCodec{secret: []byte(secret), method: method, defaultTTL: defaultTTL}, nil
}

// Issue signs a token for subject expiring after ttl (the codec default
// when ttl is zero; a negative ttl yields an already-expired token). A
// positive notBeforeDelay adds an nbf claim so the token only becomes
// valid in the future.
func (c *TokenCodec) Issue(subject string, ttl, notBeforeDelay time.Duration) (string, error) {
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	if notBeforeDelay > 0 {
		claims.NotBefore = jwt.NewNumericDate(now.Add(notBeforeDelay))
	}

	token := jwt.NewWithClaims(c.method, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies the signature and timestamps of raw and returns its
// claims. Failures map onto the domain taxonomy: ErrTokenExpired,
// ErrTokenNotYetValid, or ErrTokenInvalid for signature/structure faults.
func (c *TokenCodec) Decode(raw string) (*Claims, error) {
	var registered jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &registered, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != c.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, decodeError(err)
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims := &Claims{Subject: registered.Subject}
	if registered.ExpiresAt != nil {
		claims.ExpiresAt = registered.ExpiresAt.Time
	}
	if registered.NotBefore != nil {
		claims.NotBefore = registered.NotBefore.Time
	}
	return claims, nil
}

// decodeError maps jwt faults onto the domain taxonomy. The underlying
// jwt sentinel stays in the chain, so signature and structural faults
// remain distinguishable even though both surface as ErrTokenInvalid.
func decodeError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", domain.ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return fmt.Errorf("%w: %w", domain.ErrTokenNotYetValid, err)
	default:
		return fmt.Errorf("%w: %w", domain.ErrTokenInvalid, err)
	}
}
