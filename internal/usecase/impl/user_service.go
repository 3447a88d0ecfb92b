// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"linkup/config"
	deliverycontext "linkup/internal/delivery/context"
	"linkup/internal/domain/entity"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/domain/repository"
	"linkup/internal/domain/service"
	"linkup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	initialCredits int
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	initialCredits := 0
	if params.Config != nil && params.Config.Auth != nil {
		initialCredits = params.Config.Auth.InitialCredits
	}

	return &userService{
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		initialCredits: initialCredits,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if isBlank(input.FirstName) || isBlank(input.LastName) || isBlank(input.Email) ||
		isBlank(input.PhoneNumber) || isBlank(input.Password) {
		return nil, domainerrors.ErrBadRequest.WrapMessage("missing required registration field")
	}

	srv.log(ctx).Info("Starting registration",
		slog.String("email", input.Email),
		slog.String("phoneNumber", input.PhoneNumber),
		slog.String("ip", input.ClientIP))

	// Pre-insert check is an optimization for a friendly early reject; the
	// unique indexes on users.email and users.phone_number decide races.
	exists, err := srv.userRepo.ExistsByPhoneOrEmail(ctx, input.PhoneNumber, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check user existence")
	}
	if exists {
		srv.log(ctx).Warn("User already exists",
			slog.String("email", input.Email),
			slog.String("phoneNumber", input.PhoneNumber),
			slog.String("ip", input.ClientIP))

		return nil, domainerrors.ErrUserConflict.WrapMessage("registration blocked by existing user")
	}

	hash, salt, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	guid := uuid.New()
	newUser := &entity.User{
		Guid:        &guid,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Credential: entity.Credential{
			PasswordHash: hash,
			PasswordSalt: salt,
		},
		Credits:          srv.initialCredits,
		RegistrationDate: time.Now(),
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			srv.log(ctx).Warn("Registration lost a uniqueness race",
				slog.String("email", input.Email),
				slog.String("phoneNumber", input.PhoneNumber))

			return nil, domainerrors.ErrUserConflict.WrapMessage("registration blocked by uniqueness constraint")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	token, expiresAt, err := srv.tokenService.Issue(newUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token during registration")
	}

	srv.log(ctx).Info("User registered",
		slog.Int64("userID", newUser.ID),
		slog.String("email", input.Email),
		slog.String("ip", input.ClientIP))

	return &usecase.AuthOutput{User: newUser, Token: token, TokenExpiration: expiresAt}, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if isBlank(input.Email) || isBlank(input.Password) {
		return nil, domainerrors.ErrBadRequest.WrapMessage("email and password are mandatory")
	}

	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same surface as a wrong password: do not leak which case occurred.
			srv.log(ctx).Warn("Login failed: user not found",
				slog.String("email", input.Email),
				slog.String("ip", input.ClientIP))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("no user for email")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	match, err := srv.hasher.Verify(input.Password, user.Credential.PasswordHash, user.Credential.PasswordSalt)
	if err != nil {
		srv.log(ctx).Error("Credential verification failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify password")
	}
	if !match {
		srv.log(ctx).Warn("Login failed: password mismatch",
			slog.String("email", input.Email),
			slog.String("ip", input.ClientIP))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, expiresAt, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.log(ctx).Info("User logged in",
		slog.Int64("userID", user.ID),
		slog.String("email", input.Email),
		slog.String("ip", input.ClientIP))

	return &usecase.AuthOutput{User: user, Token: token, TokenExpiration: expiresAt}, nil
}

// GetByID loads a single user record.
func (srv *userService) GetByID(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no user for id")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
