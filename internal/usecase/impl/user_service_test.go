package impl

import (
	"context"
	"testing"
	"time"

	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/repository"
	mockRepo "relay/internal/mocks/repository"
	mockService "relay/internal/mocks/service"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	victoryRepo  *mockRepo.MockVictoryRepository
	loginKeyRepo *mockRepo.MockLoginKeyRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	service      usecase.UserUsecase
}

func createTestUserService(t *testing.T) *userServiceFixtures {
	f := &userServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		victoryRepo:  mockRepo.NewMockVictoryRepository(t),
		loginKeyRepo: mockRepo.NewMockLoginKeyRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
	}

	f.service = NewUserService(UserServiceParams{
		TxManager:    f.txManager,
		UserRepo:     f.userRepo,
		VictoryRepo:  f.victoryRepo,
		LoginKeyRepo: f.loginKeyRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return f
}

func TestUserService_Register_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(f.userRepo)
	expectPassthroughTx(f.txManager, factory)

	f.hasher.EXPECT().Hash("hunter2").Return("hashed", nil)
	f.userRepo.EXPECT().
		FindByUserName(ctx, "dovahkiin").
		Return(nil, repository.ErrUserNotFound)
	f.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	out, err := f.service.Register(ctx, usecase.RegisterUserInput{
		UserName: "dovahkiin",
		Password: "hunter2",
		Location: entity.NewGeoPoint(60.45, 22.28),
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "dovahkiin", out.User.UserName)
	assert.Equal(t, "hashed", out.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, out.User.ID)
}

func TestUserService_Register_NameTaken(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(f.userRepo)
	expectPassthroughTx(f.txManager, factory)

	f.hasher.EXPECT().Hash("hunter2").Return("hashed", nil)
	f.userRepo.EXPECT().
		FindByUserName(ctx, "dovahkiin").
		Return(&entity.User{ID: uuid.New(), UserName: "dovahkiin"}, nil)

	out, err := f.service.Register(ctx, usecase.RegisterUserInput{
		UserName: "dovahkiin",
		Password: "hunter2",
	})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNameTaken))
}

func TestUserService_Register_DigitLeadingName(t *testing.T) {
	f := createTestUserService(t)

	out, err := f.service.Register(context.Background(), usecase.RegisterUserInput{
		UserName: "7dovahkiin",
		Password: "hunter2",
	})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNameReserved))
}

func TestUserService_Register_EmptyFields(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	out, err := f.service.Register(ctx, usecase.RegisterUserInput{UserName: "", Password: "x"})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	out, err = f.service.Register(ctx, usecase.RegisterUserInput{UserName: "dovahkiin", Password: ""})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Login_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), UserName: "dovahkiin", PasswordHash: "hashed"}

	f.userRepo.EXPECT().FindByUserName(ctx, "dovahkiin").Return(user, nil)
	f.hasher.EXPECT().Check("hunter2", "hashed").Return(true)
	f.tokenService.EXPECT().GenerateToken(user.ID, "dovahkiin").Return("access-token", nil)
	f.tokenService.EXPECT().GenerateLoginKey().Return("login-key", nil)
	f.tokenService.EXPECT().HashKey("login-key").Return("login-key-hash")
	f.tokenService.EXPECT().GetLoginKeyDuration().Return(24 * time.Hour)
	f.loginKeyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.LoginKey")).
		Run(func(_ context.Context, key *entity.LoginKey) {
			assert.Equal(t, user.ID, key.UserID)
			assert.Equal(t, "login-key-hash", key.KeyHash)
			assert.WithinDuration(t, time.Now().Add(24*time.Hour), key.ExpiresAt, time.Minute)
		}).
		Return(nil)

	out, err := f.service.Login(ctx, usecase.LoginInput{UserName: "dovahkiin", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "login-key", out.LoginKey)
	assert.Equal(t, user, out.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), UserName: "dovahkiin", PasswordHash: "hashed"}

	f.userRepo.EXPECT().FindByUserName(ctx, "dovahkiin").Return(user, nil)
	f.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	out, err := f.service.Login(ctx, usecase.LoginInput{UserName: "dovahkiin", Password: "wrong"})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByUserName(ctx, "nobody").Return(nil, repository.ErrUserNotFound)

	out, err := f.service.Login(ctx, usecase.LoginInput{UserName: "nobody", Password: "x"})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_RedeemLoginKey_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), UserName: "dovahkiin"}
	key := &entity.LoginKey{
		ID:        uuid.New(),
		UserID:    user.ID,
		KeyHash:   "login-key-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	f.tokenService.EXPECT().HashKey("login-key").Return("login-key-hash")
	f.loginKeyRepo.EXPECT().FindByHash(ctx, "login-key-hash").Return(key, nil)
	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.tokenService.EXPECT().GenerateToken(user.ID, "dovahkiin").Return("fresh-token", nil)

	out, err := f.service.RedeemLoginKey(ctx, usecase.RedeemLoginKeyInput{LoginKey: "login-key"})
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", out.AccessToken)
	assert.Equal(t, "login-key", out.LoginKey, "the key stays valid after redemption")
	assert.Equal(t, user, out.User)
}

func TestUserService_RedeemLoginKey_Expired(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	key := &entity.LoginKey{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		KeyHash:   "login-key-hash",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	f.tokenService.EXPECT().HashKey("login-key").Return("login-key-hash")
	f.loginKeyRepo.EXPECT().FindByHash(ctx, "login-key-hash").Return(key, nil)

	out, err := f.service.RedeemLoginKey(ctx, usecase.RedeemLoginKeyInput{LoginKey: "login-key"})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidKey))
}

func TestUserService_RedeemLoginKey_Unknown(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.tokenService.EXPECT().HashKey("bogus").Return("bogus-hash")
	f.loginKeyRepo.EXPECT().FindByHash(ctx, "bogus-hash").Return(nil, repository.ErrLoginKeyNotFound)

	out, err := f.service.RedeemLoginKey(ctx, usecase.RedeemLoginKeyInput{LoginKey: "bogus"})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidKey))
}

func TestUserService_Logout_RevokesKeys(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.loginKeyRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)

	require.NoError(t, f.service.Logout(ctx, userID))
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	user, err := f.service.GetUser(ctx, id)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_GetUserVictories_FiltersByCollaboration(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, UserName: "dovahkiin"}

	mine := &entity.Victory{ID: uuid.New(), ReceiverIDs: []uuid.UUID{userID, uuid.New()}}
	other := &entity.Victory{ID: uuid.New(), ReceiverIDs: []uuid.UUID{uuid.New()}}

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	f.victoryRepo.EXPECT().ListAll(ctx).Return([]*entity.Victory{mine, other}, nil)

	victories, err := f.service.GetUserVictories(ctx, userID)
	require.NoError(t, err)
	require.Len(t, victories, 1)
	assert.Equal(t, mine.ID, victories[0].ID)
}
