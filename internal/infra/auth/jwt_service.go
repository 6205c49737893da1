// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"gramsaarthi/config"
	"gramsaarthi/internal/domain/entity"
	"gramsaarthi/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte            // Symmetric secret for signing and verification.
	method jwt.SigningMethod // Configured HMAC signing method.
	ttl    time.Duration     // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// Only the HMAC family of signing algorithms is accepted; an unknown algorithm
// name fails startup rather than at the first login.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT == nil || cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	method := jwt.GetSigningMethod(cfg.JWT.Algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.Errorf("unsupported jwt algorithm: %s", cfg.JWT.Algorithm)
	}

	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		method: method,
		ttl:    time.Duration(cfg.JWT.ExpireMinutes) * time.Minute,
	}, nil
}

// Issue creates a signed compact token for the given identity.
func (s *jwtService) Issue(role entity.Role, email string) (string, error) {
	email = entity.NormalizeEmail(email)
	now := time.Now()

	claims := &service.Claims{
		Role:  role,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%s:%s", role, email),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return token, nil
}

// Verify parses and validates a token string. Every failure mode collapses to
// service.ErrInvalidToken so the caller cannot distinguish a bad signature
// from an expired or malformed token.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{s.method.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, service.ErrInvalidToken
	}

	if !claims.Role.IsValid() || claims.Email == "" {
		return nil, service.ErrInvalidToken
	}

	return claims, nil
}
