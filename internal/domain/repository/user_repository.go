// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"menumaster/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// List returns all users in insertion order.
	List(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Create appends a new user.
	Create(ctx context.Context, user *entity.User) error

	// Update replaces the stored user with the same ID.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user with the given ID.
	Delete(ctx context.Context, id string) error
}

// ErrAdminNotFound is returned when no admin matches a lookup.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository persists administrator accounts. An empty store is seeded with the default admin.
type AdminRepository interface {
	List(ctx context.Context) ([]*entity.Admin, error)
	Create(ctx context.Context, admin *entity.Admin) error
}

// SessionRepository persists the single active session.
type SessionRepository interface {
	// ActiveUser returns the logged-in user, or nil when no user session is active.
	ActiveUser(ctx context.Context) (*entity.User, error)
	SetActiveUser(ctx context.Context, user *entity.User) error
	ClearActiveUser(ctx context.Context) error

	IsAdminActive(ctx context.Context) (bool, error)
	SetAdminActive(ctx context.Context, active bool) error
}
