// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// Account is the core entity in the system, representing a registered identity.
// The composite key (Role, Email) uniquely identifies an account; the same
// email may exist under different roles.
type Account struct {
	Role         Role      // The role this account was registered under. Part of the key.
	Email        string    // Lower-cased email address. Part of the key.
	FullName     string    // The account holder's display name.
	PasswordHash string    // Opaque, salted hash of the password. Never exposed to clients.
	IsActive     bool      // Whether the account may log in. Defaults to true on registration.
	CreatedAt    time.Time // Timestamp of when this account was created (UTC).
	UpdatedAt    time.Time // Timestamp of the last modification to this account (UTC).
}

// PublicUser is the subset of an Account that is safe to return to a client.
// It never includes the password hash.
type PublicUser struct {
	Role      Role      `json:"role"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Public returns the client-facing view of the account.
func (a *Account) Public() *PublicUser {
	return &PublicUser{
		Role:      a.Role,
		Email:     a.Email,
		FullName:  a.FullName,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// NormalizeEmail canonicalizes an email address for use as a key: surrounding
// whitespace is trimmed and the address is lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
