package impl

import (
	"io"
	"log/slog"
	"testing"

	mockRepo "gramsaarthi/internal/mocks/repository"
	mockSvc "gramsaarthi/internal/mocks/service"
	"gramsaarthi/internal/usecase"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
	tokenSvc    *mockSvc.MockTokenService
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		AccountRepo: accountRepo,
		Hasher:      hasher,
		TokenSvc:    tokenSvc,
		Logger:      newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		hasher:      hasher,
		tokenSvc:    tokenSvc,
	}
}
