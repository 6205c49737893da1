// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gramsaarthi/internal/domain/entity"
)

// ErrAccountExists is returned by InsertIfAbsent when the (role, email) key is taken.
var ErrAccountExists = errors.New("account already exists")

// ErrAccountNotFound is returned when no account exists for the (role, email) key.
var ErrAccountNotFound = errors.New("account not found")

// AccountPatch describes the mutable fields of an account. Nil fields are left
// untouched; UpdatedAt is always bumped by the store.
type AccountPatch struct {
	FullName     *string
	PasswordHash *string
}

// IsEmpty reports whether the patch would change nothing.
func (p AccountPatch) IsEmpty() bool {
	return p.FullName == nil && p.PasswordHash == nil
}

// AccountRepository defines the standard operations against the users table.
// All four operations are single-key, strongly consistent, and atomic with
// respect to existence checking: there is no separate read-then-write window.
type AccountRepository interface {
	// InsertIfAbsent persists a new account only if no record exists for its
	// (role, email) key. Returns ErrAccountExists otherwise.
	InsertIfAbsent(ctx context.Context, account *entity.Account) error

	// Get retrieves a single account by its (role, email) key.
	// Returns ErrAccountNotFound when the key is absent.
	Get(ctx context.Context, role entity.Role, email string) (*entity.Account, error)

	// ConditionalUpdate applies the patch only if the key exists, bumping
	// UpdatedAt, and returns the updated account. Returns ErrAccountNotFound
	// when the key is absent.
	ConditionalUpdate(ctx context.Context, role entity.Role, email string, patch AccountPatch) (*entity.Account, error)

	// ConditionalDelete removes the account only if the key exists.
	// Returns ErrAccountNotFound when the key is absent.
	ConditionalDelete(ctx context.Context, role entity.Role, email string) error
}
