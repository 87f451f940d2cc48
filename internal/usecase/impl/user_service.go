package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/constants"
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Publisher service.EventPublisher `optional:"true"`
	Logger    *slog.Logger
}

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	events   eventEmitter
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		events:   eventEmitter{publisher: params.Publisher, logger: params.Logger},
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register stores a donor identity. Role and status are never taken from the caller.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterUserInput) (*usecase.RegisterUserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return &usecase.RegisterUserOutput{Created: false}, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up user")
	}

	now := time.Now().UTC()
	user := &entity.User{
		Email:      email,
		Name:       input.Name,
		Avatar:     input.Avatar,
		Role:       entity.RoleDonor,
		Status:     entity.UserStatusActive,
		BloodGroup: input.BloodGroup,
		District:   input.District,
		Upazila:    input.Upazila,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	result, err := srv.userRepo.Create(ctx, user)
	if err != nil {
		// A concurrent registration won the unique index.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return &usecase.RegisterUserOutput{Created: false}, nil
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("Registered user", slog.String("email", email), slog.String("user_id", result.InsertedID))
	srv.events.emit(ctx, constants.EventUserRegistered, result.InsertedID, map[string]any{"email": email})

	return &usecase.RegisterUserOutput{Created: true, Result: result}, nil
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) HasRole(ctx context.Context, email string, role entity.Role) (bool, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find user")
	}

	return user.EffectiveRole() == role, nil
}

func (srv *userService) GetProfile(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, translateRepoError(err, "failed to get profile")
	}

	return user, nil
}

// UpdateProfile applies the self-service fields. Role and status cannot be set here.
func (srv *userService) UpdateProfile(ctx context.Context, email string, input usecase.UpdateProfileInput) (*repository.UpdateResult, error) {
	if input.BloodGroup != nil && !entity.IsValidBloodGroup(*input.BloodGroup) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown blood group")
	}

	result, err := srv.userRepo.UpdateProfile(ctx, email, entity.ProfileUpdate{
		Name:       input.Name,
		Avatar:     input.Avatar,
		BloodGroup: input.BloodGroup,
		District:   input.District,
		Upazila:    input.Upazila,
	}, time.Now().UTC())
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return result, nil
}

func (srv *userService) SetRole(ctx context.Context, id string, role entity.Role) (*repository.UpdateResult, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role")
	}

	result, err := srv.userRepo.UpdateRoleByID(ctx, id, role, time.Now().UTC())
	if err != nil {
		return nil, translateRepoError(err, "failed to set role")
	}

	srv.log(ctx).Info("Changed user role",
		slog.String("user_id", id),
		slog.String("role", role.String()),
		slog.Int64("matched", result.MatchedCount),
	)

	return result, nil
}

func (srv *userService) SetStatus(ctx context.Context, email string, status entity.UserStatus) (*repository.UpdateResult, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be active or blocked")
	}

	result, err := srv.userRepo.UpdateStatusByEmail(ctx, email, status, time.Now().UTC())
	if err != nil {
		return nil, errors.Wrap(err, "failed to set status")
	}

	srv.log(ctx).Info("Changed user status",
		slog.String("email", email),
		slog.String("status", string(status)),
		slog.Int64("matched", result.MatchedCount),
	)

	return result, nil
}

func (srv *userService) GrantAdmin(ctx context.Context, email string) (*repository.UpdateResult, error) {
	result, err := srv.userRepo.UpdateRoleByEmail(ctx, email, entity.RoleAdmin, time.Now().UTC())
	if err != nil {
		return nil, errors.Wrap(err, "failed to grant admin")
	}
	if result.MatchedCount == 0 {
		return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "no registered user with email %s", email)
	}

	return result, nil
}
