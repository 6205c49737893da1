package impl_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"gramsaarthi/config"
	"gramsaarthi/internal/domain/entity"
	domainerrors "gramsaarthi/internal/domain/errors"
	"gramsaarthi/internal/infra/auth"
	"gramsaarthi/internal/infra/persistence/memory"
	"gramsaarthi/internal/usecase"
	"gramsaarthi/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestRegister_ConcurrentSameIdentity drives the real hasher, token service and
// in-memory store: out of N simultaneous registrations for one identity,
// exactly one must win and the rest must see a conflict.
func TestRegister_ConcurrentSameIdentity(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT = &config.JWTConfig{Secret: "test-secret", Algorithm: "HS256", ExpireMinutes: 60}
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	svc := impl.NewAccountService(impl.AccountServiceParams{
		AccountRepo: memory.NewAccountRepository(),
		Hasher:      auth.NewBcryptHasher(cfg),
		TokenSvc:    tokenSvc,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	const goroutines = 8

	ctx := context.Background()
	results := make(chan error, goroutines)

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(ctx, &usecase.RegisterInput{
				Role:     entity.RoleRuralUser,
				FullName: "Asha Devi",
				Email:    "asha@example.com",
				Password: "password123",
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domainerrors.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, goroutines-1, conflicts)
}
