// Package memory implements the account repository in process memory.
// It preserves the store contract — single-key atomic conditional writes —
// under a mutex, and backs local development and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"gramsaarthi/internal/domain/entity"
	"gramsaarthi/internal/domain/repository"
)

type accountKey struct {
	role  entity.Role
	email string
}

// accountRepository implements repository.AccountRepository with a mutex-guarded map.
type accountRepository struct {
	mu       sync.Mutex
	accounts map[accountKey]entity.Account
}

// NewAccountRepository is the constructor for the in-memory account repository.
func NewAccountRepository() repository.AccountRepository {
	return &accountRepository{
		accounts: make(map[accountKey]entity.Account),
	}
}

func (r *accountRepository) InsertIfAbsent(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := accountKey{role: account.Role, email: account.Email}
	if _, ok := r.accounts[k]; ok {
		return repository.ErrAccountExists
	}
	r.accounts[k] = *account

	return nil
}

func (r *accountRepository) Get(_ context.Context, role entity.Role, email string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountKey{role: role, email: email}]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return &account, nil
}

func (r *accountRepository) ConditionalUpdate(_ context.Context, role entity.Role, email string, patch repository.AccountPatch) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := accountKey{role: role, email: email}
	account, ok := r.accounts[k]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	if patch.FullName != nil {
		account.FullName = *patch.FullName
	}
	if patch.PasswordHash != nil {
		account.PasswordHash = *patch.PasswordHash
	}
	account.UpdatedAt = time.Now().UTC()
	r.accounts[k] = account

	return &account, nil
}

func (r *accountRepository) ConditionalDelete(_ context.Context, role entity.Role, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := accountKey{role: role, email: email}
	if _, ok := r.accounts[k]; !ok {
		return repository.ErrAccountNotFound
	}
	delete(r.accounts, k)

	return nil
}
