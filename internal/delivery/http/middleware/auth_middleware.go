package middleware

import (
	"strings"

	"gramsaarthi/internal/delivery/http/response"
	"gramsaarthi/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyClaims is the echo context key under which verified token claims
// are stored for handlers.
const ContextKeyClaims = "claims"

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the bearer token.
// A missing header or malformed prefix is rejected before any decode attempt.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_BEARER_TOKEN", "missing bearer token")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "MISSING_BEARER_TOKEN", "missing bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			// One generic message for malformed, tampered and expired tokens.
			return response.Unauthorized(c, "INVALID_TOKEN", "invalid or expired token")
		}

		// Set the verified identity on the context for handlers to use
		c.Set(ContextKeyClaims, claims)

		return next(c)
	}
}

// ClaimsFromContext retrieves the verified claims stored by Authenticate.
func ClaimsFromContext(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(ContextKeyClaims).(*service.Claims)

	return claims, ok
}
