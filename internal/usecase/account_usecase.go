// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gramsaarthi/internal/domain/entity"
	"gramsaarthi/internal/domain/service"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Validation bounds mirror the public API contract.
type RegisterInput struct {
	Role     entity.Role `json:"role" validate:"required,role"`
	FullName string      `json:"full_name" validate:"required,min=2,max=120"`
	Email    string      `json:"email" validate:"required,email,min=5,max=254"`
	Password string      `json:"password" validate:"required,min=8,max=128"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Role     entity.Role `json:"role" validate:"required,role"`
	Email    string      `json:"email" validate:"required,min=5,max=254"`
	Password string      `json:"password" validate:"required,min=8,max=128"`
}

// UpdateSelfInput defines the self-service update patch. Both fields are
// optional, but at least one must be present.
type UpdateSelfInput struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=2,max=120"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,max=128"`
}

// --- Output DTOs ---

// TokenOutput returns the issued bearer token after a successful login.
type TokenOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.PublicUser, error)
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
	GetSelf(ctx context.Context, claims *service.Claims) (*entity.PublicUser, error)
	UpdateSelf(ctx context.Context, claims *service.Claims, input *UpdateSelfInput) (*entity.PublicUser, error)
	DeleteSelf(ctx context.Context, claims *service.Claims) error
}
