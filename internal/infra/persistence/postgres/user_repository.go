// Package postgres contains the relational implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) (*repository.InsertResult, error) {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrDuplicateEmail
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID.String()

	return &repository.InsertResult{Acknowledged: true, InsertedID: user.ID}, nil
}

// FindByEmail retrieves a user by email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindAll returns every user, newest first.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// UpdateRoleByID sets the role of the user with the given id.
func (repo *userRepository) UpdateRoleByID(ctx context.Context, id string, role entity.Role, now time.Time) (*repository.UpdateResult, error) {
	userID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	return repo.updates(ctx, repo.db.Where("id = ?", userID), map[string]any{
		"role":       string(role),
		"updated_at": now,
	})
}

// UpdateRoleByEmail sets the role of the user with the given email.
func (repo *userRepository) UpdateRoleByEmail(ctx context.Context, email string, role entity.Role, now time.Time) (*repository.UpdateResult, error) {
	return repo.updates(ctx, repo.db.Where("email = ?", normalizeEmail(email)), map[string]any{
		"role":       string(role),
		"updated_at": now,
	})
}

// UpdateStatusByEmail sets the account status of the user with the given email.
func (repo *userRepository) UpdateStatusByEmail(ctx context.Context, email string, status entity.UserStatus, now time.Time) (*repository.UpdateResult, error) {
	return repo.updates(ctx, repo.db.Where("email = ?", normalizeEmail(email)), map[string]any{
		"status":     string(status),
		"updated_at": now,
	})
}

// UpdateProfile sets the non-nil profile fields of the user with the given email.
func (repo *userRepository) UpdateProfile(ctx context.Context, email string, update entity.ProfileUpdate, now time.Time) (*repository.UpdateResult, error) {
	return repo.updates(ctx, repo.db.Where("email = ?", normalizeEmail(email)), profileColumns(update, now))
}

// Count returns the number of users.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return n, nil
}

func (repo *userRepository) updates(ctx context.Context, scope *gorm.DB, columns map[string]any) (*repository.UpdateResult, error) {
	result := scope.WithContext(ctx).Model(&model.UserModel{}).Updates(columns)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	return updateResult(result.RowsAffected), nil
}

func profileColumns(update entity.ProfileUpdate, now time.Time) map[string]any {
	columns := map[string]any{"updated_at": now}
	set := func(column string, value *string) {
		if value != nil {
			columns[column] = *value
		}
	}
	set("name", update.Name)
	set("avatar", update.Avatar)
	set("blood_group", update.BloodGroup)
	set("district", update.District)
	set("upazila", update.Upazila)

	return columns
}
