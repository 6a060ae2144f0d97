// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"menumaster/internal/domain/entity"
)

// --- Input DTOs ---

// SignupUserInput defines the data required to register a new customer.
type SignupUserInput struct {
	Login       string
	Name        string
	Email       string
	NationalID  string
	Address     string
	PostalCode  string
	HouseNumber string
	Phone       string
	Password    string
}

// ProfileInput carries the editable profile fields. Nil Login or NationalID keeps the stored value.
type ProfileInput struct {
	Login       *string
	Name        string
	Email       string
	NationalID  *string
	Address     string
	PostalCode  string
	HouseNumber string
	Phone       string
}

// UserUpdate is one of ProfileUpdate, PasswordChange, AdminPasswordReset or SelfServiceReset.
type UserUpdate interface {
	isUserUpdate()
}

// ProfileUpdate edits profile fields without touching the password.
type ProfileUpdate struct {
	Profile ProfileInput
}

// PasswordChange edits the profile and sets a new password after checking the current one.
type PasswordChange struct {
	Profile         ProfileInput
	CurrentPassword string
	NewPassword     string
}

// AdminPasswordReset is an admin edit. The current password is not checked.
type AdminPasswordReset struct {
	Profile     *ProfileInput
	NewPassword string
}

// SelfServiceReset sets a new password at the end of the forgot-password flow.
type SelfServiceReset struct {
	NewPassword string
}

func (ProfileUpdate) isUserUpdate()      {}
func (PasswordChange) isUserUpdate()     {}
func (AdminPasswordReset) isUserUpdate() {}
func (SelfServiceReset) isUserUpdate()   {}

// AccountUsecase defines customer account and session operations.
type AccountUsecase interface {
	SignupUser(ctx context.Context, input *SignupUserInput) (*entity.User, error)
	// LoginUser authenticates by the configured identifier field, the display name by default.
	LoginUser(ctx context.Context, identifier, password string) (*entity.User, error)
	LogoutUser(ctx context.Context) error
	UpdateUser(ctx context.Context, userID string, update UserUpdate) (*entity.User, error)
	DeleteUser(ctx context.Context, userID string) error
	// VerifyIdentity matches a user by name and phone digits for the forgot-password flow.
	VerifyIdentity(ctx context.Context, name, phone string) (string, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
	CurrentSession(ctx context.Context) (entity.Session, error)
	// ReconcileSessions drops the admin flag when a user session is also stored.
	ReconcileSessions(ctx context.Context) error
}

// AdminUsecase defines administrator account and session operations.
type AdminUsecase interface {
	SignupAdmin(ctx context.Context, login, password string) (*entity.Admin, error)
	LoginAdmin(ctx context.Context, login, password string) error
	LogoutAdmin(ctx context.Context) error
	// EnsureDefaultAdmin seeds the default administrator when none exists.
	EnsureDefaultAdmin(ctx context.Context) error
}
