package service

import (
	"errors"

	"gramsaarthi/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single error returned for any token verification
// failure: malformed structure, signature mismatch, unexpected algorithm or
// expiry in the past. Callers must not learn which check failed.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	Role  entity.Role `json:"role"`
	Email string      `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, URL-safe compact token encoding the given
	// identity, expiring after the configured TTL.
	Issue(role entity.Role, email string) (string, error)

	// Verify parses the token string, validates the signature against the
	// configured secret and algorithm, and checks expiry. Any failure is
	// reported as ErrInvalidToken.
	Verify(tokenString string) (*Claims, error)
}
