// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register an identity.
type RegisterUserInput struct {
	Email      string
	Name       string
	Avatar     string
	BloodGroup string
	District   string
	Upazila    string
}

// UpdateProfileInput holds the self-service fields. Nil fields are left unchanged.
type UpdateProfileInput struct {
	Name       *string
	Avatar     *string
	BloodGroup *string
	District   *string
	Upazila    *string
}

// --- Output DTOs ---

// RegisterUserOutput reports whether a new identity was stored.
type RegisterUserOutput struct {
	// Created is false when the email was already registered.
	Created bool
	Result  *repository.InsertResult
}

// UserUsecase defines the identity operations.
type UserUsecase interface {
	// Register stores a new identity; a repeat registration is a no-op.
	Register(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	// HasRole reports whether the identity's stored role is role. Unknown identities report false.
	HasRole(ctx context.Context, email string, role entity.Role) (bool, error)
	GetProfile(ctx context.Context, email string) (*entity.User, error)
	UpdateProfile(ctx context.Context, email string, input UpdateProfileInput) (*repository.UpdateResult, error)
	SetRole(ctx context.Context, id string, role entity.Role) (*repository.UpdateResult, error)
	SetStatus(ctx context.Context, email string, status entity.UserStatus) (*repository.UpdateResult, error)
	// GrantAdmin promotes an already registered identity by email.
	GrantAdmin(ctx context.Context, email string) (*repository.UpdateResult, error)
}
