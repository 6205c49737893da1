// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"gramsaarthi/internal/delivery/http/middleware"
	"gramsaarthi/internal/delivery/http/response"
	"gramsaarthi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "Account registered successfully")
}

// Login handles the login request and returns a bearer token.
func (h *AccountHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// GetMe returns the public view of the caller's own account.
func (h *AccountHandler) GetMe(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "invalid or expired token")
	}

	user, err := h.uc.GetSelf(c.Request().Context(), claims)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Account retrieved successfully")
}

// UpdateMe applies a partial update to the caller's own account.
func (h *AccountHandler) UpdateMe(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "invalid or expired token")
	}

	var input *usecase.UpdateSelfInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateSelf(c.Request().Context(), claims, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Account updated successfully")
}

// DeleteMe removes the caller's own account.
func (h *AccountHandler) DeleteMe(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "invalid or expired token")
	}

	if err := h.uc.DeleteSelf(c.Request().Context(), claims); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "account deleted"}, "Account deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
