// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"
	"unicode"
	"unicode/utf8"

	"relay/config"
	deliverycontext "relay/internal/delivery/context"
	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/repository"
	"relay/internal/domain/service"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	victoryRepo  repository.VictoryRepository
	loginKeyRepo repository.LoginKeyRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	VictoryRepo  repository.VictoryRepository
	LoginKeyRepo repository.LoginKeyRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		victoryRepo:  params.VictoryRepo,
		loginKeyRepo: params.LoginKeyRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new player with a unique user name.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("userName", input.UserName))

	if err := validateUserName(input.UserName); err != nil {
		srv.log(ctx).Warn("Registration rejected", slog.String("userName", input.UserName), slog.Any("error", err))

		return nil, err
	}
	if input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "password must not be empty")
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, findErr := userRepo.FindByUserName(ctx, input.UserName)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrUserNameTaken, "user name already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to look up user name")
		}

		newUser := &entity.User{
			ID:           uuid.New(),
			UserName:     input.UserName,
			PasswordHash: hashedPassword,
			Location:     input.Location,
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("userName", input.UserName), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// validateUserName enforces the registration naming rules. Names starting
// with a digit are reserved so that numeric identifiers never collide with
// user names in lookups.
func validateUserName(userName string) error {
	if userName == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "user name must not be empty")
	}

	first, _ := utf8.DecodeRuneInString(userName)
	if unicode.IsDigit(first) {
		return errors.Wrap(domainerrors.ErrUserNameReserved, "user name must not start with a digit")
	}

	return nil
}

// Login verifies credentials and issues an access token plus a persisted
// login key.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("userName", input.UserName))

	user, err := srv.userRepo.FindByUserName(ctx, input.UserName)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("userName", input.UserName))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by name")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("userName", input.UserName))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.GenerateToken(user.ID, user.UserName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	loginKey, err := srv.tokenService.GenerateLoginKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate login key")
	}

	newKey := &entity.LoginKey{
		ID:        uuid.New(),
		UserID:    user.ID,
		KeyHash:   srv.tokenService.HashKey(loginKey),
		ExpiresAt: time.Now().Add(srv.tokenService.GetLoginKeyDuration()),
	}

	if err := srv.loginKeyRepo.Create(ctx, newKey); err != nil {
		return nil, errors.Wrap(err, "failed to store login key")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		LoginKey:    loginKey,
		User:        user,
	}, nil
}

// RedeemLoginKey exchanges a stored login key for a fresh access token. The
// key itself is returned unchanged and stays valid until it expires or the
// user logs out.
func (srv *userService) RedeemLoginKey(ctx context.Context, input usecase.RedeemLoginKeyInput) (*usecase.LoginOutput, error) {
	if input.LoginKey == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "login key must not be empty")
	}

	key, err := srv.loginKeyRepo.FindByHash(ctx, srv.tokenService.HashKey(input.LoginKey))
	if err != nil {
		if errors.Is(err, repository.ErrLoginKeyNotFound) {
			srv.log(ctx).Warn("Login key redemption failed")

			return nil, errors.Wrap(domainerrors.ErrInvalidKey, "redeem login key")
		}

		return nil, errors.Wrap(err, "failed to find login key")
	}

	if key.Expired(time.Now()) {
		srv.log(ctx).Warn("Expired login key presented", slog.Any("userID", key.UserID))

		return nil, errors.Wrap(domainerrors.ErrInvalidKey, "login key expired")
	}

	user, err := srv.userRepo.FindByID(ctx, key.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The key outlived its user; treat it as revoked.
			return nil, errors.Wrap(domainerrors.ErrInvalidKey, "redeem login key")
		}

		return nil, errors.Wrap(err, "failed to find login key owner")
	}

	accessToken, err := srv.tokenService.GenerateToken(user.ID, user.UserName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("Login key redeemed", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		LoginKey:    input.LoginKey,
		User:        user,
	}, nil
}

// Logout revokes every login key issued to the user.
func (srv *userService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := srv.loginKeyRepo.DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to revoke login keys")
	}

	srv.log(ctx).Info("User logged out", slog.Any("userID", userID))

	return nil
}

// GetUser retrieves a single user by ID.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get user")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// GetUserVictories lists every victory the user collaborated in.
func (srv *userService) GetUserVictories(ctx context.Context, userID uuid.UUID) ([]*entity.Victory, error) {
	if _, err := srv.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	victories, err := srv.victoryRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list victories", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to list victories")
	}

	collaborated := make([]*entity.Victory, 0)
	for _, victory := range victories {
		if victory.HasCollaborated(userID) {
			collaborated = append(collaborated, victory)
		}
	}

	return collaborated, nil
}
