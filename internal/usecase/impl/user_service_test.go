package impl

import (
	"context"
	"testing"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/domain/service"
	mockRepo "bloodlink/internal/mocks/repository"
	mockService "bloodlink/internal/mocks/service"
	"bloodlink/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	userRepo  *mockRepo.MockUserRepository
	publisher *mockService.MockEventPublisher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	return userServiceFixtures{
		service: NewUserService(UserServiceParams{
			UserRepo:  userRepo,
			Publisher: publisher,
			Logger:    newDiscardLogger(),
		}),
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func TestUserService_Register_NewUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "a@x.com" && u.Role == entity.RoleDonor && u.Status == entity.UserStatusActive
		})).
		Return(&repository.InsertResult{Acknowledged: true, InsertedID: "u1"}, nil)
	fx.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e *service.DomainEvent) bool {
			return e.Type == "user.registered" && e.Subject == "u1"
		})).
		Return(nil)

	out, err := fx.service.Register(ctx, usecase.RegisterUserInput{Email: " A@x.com ", Name: "A"})
	require.NoError(t, err)

	assert.True(t, out.Created)
	assert.Equal(t, "u1", out.Result.InsertedID)
}

func TestUserService_Register_IsIdempotent(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(&entity.User{Email: "a@x.com"}, nil)

	out, err := fx.service.Register(ctx, usecase.RegisterUserInput{Email: "a@x.com"})
	require.NoError(t, err)

	assert.False(t, out.Created)
	assert.Nil(t, out.Result)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_LosesRaceToUniqueIndex(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil, repository.ErrDuplicateEmail)

	out, err := fx.service.Register(ctx, usecase.RegisterUserInput{Email: "a@x.com"})
	require.NoError(t, err)
	assert.False(t, out.Created)
}

func TestUserService_Register_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(&repository.InsertResult{Acknowledged: true, InsertedID: "u1"}, nil)
	fx.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	out, err := fx.service.Register(ctx, usecase.RegisterUserInput{Email: "a@x.com"})
	require.NoError(t, err)
	assert.True(t, out.Created)
}

func TestUserService_HasRole(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(&entity.User{Email: "a@x.com"}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "v@x.com").Return(&entity.User{Email: "v@x.com", Role: entity.RoleVolunteer}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@x.com").Return(nil, repository.ErrUserNotFound)

	isAdmin, err := fx.service.HasRole(ctx, "a@x.com", entity.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, isAdmin, "role defaults away from admin")

	isDonor, err := fx.service.HasRole(ctx, "a@x.com", entity.RoleDonor)
	require.NoError(t, err)
	assert.True(t, isDonor, "absent role means donor")

	isVolunteer, err := fx.service.HasRole(ctx, "v@x.com", entity.RoleVolunteer)
	require.NoError(t, err)
	assert.True(t, isVolunteer)

	unknown, err := fx.service.HasRole(ctx, "ghost@x.com", entity.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, unknown)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@x.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	name := "Renamed"

	fx.userRepo.EXPECT().
		UpdateProfile(ctx, "a@x.com", entity.ProfileUpdate{Name: &name}, mock.AnythingOfType("time.Time")).
		Return(&repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

	result, err := fx.service.UpdateProfile(ctx, "a@x.com", usecase.UpdateProfileInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ModifiedCount)

	bad := "Z+"
	_, err = fx.service.UpdateProfile(ctx, "a@x.com", usecase.UpdateProfileInput{BloodGroup: &bad})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_SetRole(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		UpdateRoleByID(ctx, "665f1c2e9b1e8a3d4c5b6a7f", entity.RoleVolunteer, mock.AnythingOfType("time.Time")).
		Return(&repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)
	fx.userRepo.EXPECT().
		UpdateRoleByID(ctx, "bad-id", entity.RoleAdmin, mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrInvalidID)

	result, err := fx.service.SetRole(ctx, "665f1c2e9b1e8a3d4c5b6a7f", entity.RoleVolunteer)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.MatchedCount)

	_, err = fx.service.SetRole(ctx, "bad-id", entity.RoleAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)

	_, err = fx.service.SetRole(ctx, "665f1c2e9b1e8a3d4c5b6a7f", entity.Role("root"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_SetStatus(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		UpdateStatusByEmail(ctx, "a@x.com", entity.UserStatusBlocked, mock.AnythingOfType("time.Time")).
		Return(&repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

	_, err := fx.service.SetStatus(ctx, "a@x.com", entity.UserStatusBlocked)
	require.NoError(t, err)

	_, err = fx.service.SetStatus(ctx, "a@x.com", entity.UserStatus("suspended"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_GrantAdmin(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		UpdateRoleByEmail(ctx, "a@x.com", entity.RoleAdmin, mock.AnythingOfType("time.Time")).
		Return(&repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)
	fx.userRepo.EXPECT().
		UpdateRoleByEmail(ctx, "ghost@x.com", entity.RoleAdmin, mock.AnythingOfType("time.Time")).
		Return(&repository.UpdateResult{Acknowledged: true}, nil)

	_, err := fx.service.GrantAdmin(ctx, "a@x.com")
	require.NoError(t, err)

	_, err = fx.service.GrantAdmin(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
