// ABOUTME: Store interface and data types for taskgate credential persistence
// ABOUTME: Defines User, ProfileUpdate and the Store interface for database operations

package store

import (
	"context"
	"errors"
	"time"
)

// ErrUserNotFound is returned when a requested user does not exist
var ErrUserNotFound = errors.New("user not found")

// ErrUserExists is returned when registering a username that is already taken
var ErrUserExists = errors.New("user already exists")

// User represents one credential record plus its optional profile fields.
// Username is the external identity; ID is an internal surrogate key.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	FirstName    *string
	LastName     *string
	DateOfBirth  *string // YYYY-MM-DD
	Email        *string
	PhoneNumber  *string
	CreatedAt    time.Time
}

// ProfileUpdate carries the optional profile fields for a partial update.
// Nil fields keep their stored value.
type ProfileUpdate struct {
	FirstName   *string
	LastName    *string
	DateOfBirth *string
	Email       *string
	PhoneNumber *string
}

// Store is the credential store consumed by the gateway.
// Implementations are safe for concurrent use.
type Store interface {
	// CreateUser inserts a new credential record.
	// Returns ErrUserExists when the username is already taken.
	CreateUser(ctx context.Context, username, passwordHash string) error

	// GetUserByUsername returns the credential record for a username.
	// Returns ErrUserNotFound when no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	// UpdateProfile applies a partial profile update for a username.
	UpdateProfile(ctx context.Context, username string, update ProfileUpdate) error

	// Close releases the underlying database handle.
	Close() error
}
