// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gramsaarthi/internal/delivery/context"
	"gramsaarthi/internal/domain/entity"
	domainerrors "gramsaarthi/internal/domain/errors"
	"gramsaarthi/internal/domain/repository"
	"gramsaarthi/internal/domain/service"
	"gramsaarthi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
// It is stateless: nothing is cached across requests, so every call is
// independently dispatchable and the store's conditional writes are the only
// serialization point.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	tokenSvc    service.TokenService
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	TokenSvc    service.TokenService
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		tokenSvc:    params.TokenSvc,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account for the (role, email) identity.
// The insert is conditional on the key being absent, so concurrent
// registrations for the same identity resolve to one success and one conflict.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.PublicUser, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.Any("role", input.Role), slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("role", input.Role), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	now := time.Now().UTC()
	account := &entity.Account{
		Role:         input.Role,
		Email:        email,
		FullName:     input.FullName,
		PasswordHash: hashedPassword,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.accountRepo.InsertIfAbsent(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			srv.log(ctx).Warn("Identity already registered", slog.Any("role", input.Role), slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrConflict, "identity already registered")
		}

		return nil, errors.Wrap(err, "failed to insert account")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", input.Role), slog.String("email", email))

	return account.Public(), nil
}

// Login verifies the credentials and issues a bearer token.
// "no such account" and "wrong password" produce the identical error so the
// endpoint cannot be used to enumerate registered emails.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Login attempt", slog.Any("role", input.Role), slog.String("email", email))

	account, err := srv.accountRepo.Get(ctx, input.Role, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "credential check failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Any("role", input.Role), slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "credential check failed")
	}

	if !account.IsActive {
		srv.log(ctx).Warn("Login rejected for inactive account", slog.Any("role", input.Role), slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "account is inactive")
	}

	token, err := srv.tokenSvc.Issue(account.Role, account.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("Login successful", slog.Any("role", input.Role), slog.String("email", email))

	return &usecase.TokenOutput{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// GetSelf returns the public view of the account the token belongs to.
// The account may have been deleted after the token was issued; the token
// stays valid until expiry but the lookup then fails with NotFound.
func (srv *accountService) GetSelf(ctx context.Context, claims *service.Claims) (*entity.PublicUser, error) {
	account, err := srv.accountRepo.Get(ctx, claims.Role, claims.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "account vanished after token issuance")
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return account.Public(), nil
}

// UpdateSelf applies a partial update to the caller's own account.
func (srv *accountService) UpdateSelf(ctx context.Context, claims *service.Claims, input *usecase.UpdateSelfInput) (*entity.PublicUser, error) {
	patch := repository.AccountPatch{FullName: input.FullName}
	if input.Password != nil {
		hashedPassword, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password during update")
		}
		patch.PasswordHash = &hashedPassword
	}
	if patch.IsEmpty() {
		return nil, errors.WithStack(domainerrors.ErrNothingToUpdate)
	}

	account, err := srv.accountRepo.ConditionalUpdate(ctx, claims.Role, claims.Email, patch)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "account vanished mid-session")
		}

		return nil, errors.Wrap(err, "failed to update account")
	}

	srv.log(ctx).Info("Account updated", slog.Any("role", claims.Role), slog.String("email", claims.Email))

	return account.Public(), nil
}

// DeleteSelf removes the caller's own account.
func (srv *accountService) DeleteSelf(ctx context.Context, claims *service.Claims) error {
	if err := srv.accountRepo.ConditionalDelete(ctx, claims.Role, claims.Email); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "account already deleted")
		}

		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("role", claims.Role), slog.String("email", claims.Email))

	return nil
}
