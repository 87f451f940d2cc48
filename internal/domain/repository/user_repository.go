package repository

import (
	"context"
	"time"

	"bloodlink/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert collides with an existing email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidID is returned when an id cannot be parsed by the backend.
	ErrInvalidID = errors.New("invalid id")
)

// UserRepository defines the interface for identity storage.
type UserRepository interface {
	// Create inserts a new user. It returns ErrDuplicateEmail when the email is taken.
	Create(ctx context.Context, user *entity.User) (*InsertResult, error)

	// FindByEmail retrieves a user by email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll returns every user, newest first.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// UpdateRoleByID sets the role of the user with the given id.
	UpdateRoleByID(ctx context.Context, id string, role entity.Role, now time.Time) (*UpdateResult, error)

	// UpdateRoleByEmail sets the role of the user with the given email.
	UpdateRoleByEmail(ctx context.Context, email string, role entity.Role, now time.Time) (*UpdateResult, error)

	// UpdateStatusByEmail sets the account status of the user with the given email.
	UpdateStatusByEmail(ctx context.Context, email string, status entity.UserStatus, now time.Time) (*UpdateResult, error)

	// UpdateProfile sets the non-nil profile fields of the user with the given email.
	UpdateProfile(ctx context.Context, email string, update entity.ProfileUpdate, now time.Time) (*UpdateResult, error)

	// Count returns the number of users.
	Count(ctx context.Context) (int64, error)
}
