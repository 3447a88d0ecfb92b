package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"linkup/config"
	"linkup/internal/domain/entity"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/domain/repository"
	"linkup/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockUserRepository
	hasher       *mockPasswordHasher
	tokenService *mockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokenService := new(mockTokenService)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{Auth: &config.AuthConfig{InitialCredits: 10}}

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       cfg,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		PhoneNumber: "+31612345678",
		Password:    "Password123!",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()
	input := validRegisterInput()

	hash := bytes.Repeat([]byte{0x01}, 64)
	salt := bytes.Repeat([]byte{0x02}, 128)
	expiresAt := time.Now().AddDate(0, 6, 0)

	fixtures.userRepo.On("ExistsByPhoneOrEmail", ctx, input.PhoneNumber, input.Email).
		Return(false, nil)
	fixtures.hasher.On("Hash", input.Password).Return(hash, salt, nil)
	fixtures.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = 42 // storage assigns the id
		}).
		Return(nil)
	fixtures.tokenService.On("Issue", int64(42)).Return("signed.token.value", expiresAt, nil)

	output, err := fixtures.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(42), output.User.ID)
	assert.Equal(t, "jane@example.com", output.User.Email)
	assert.Equal(t, hash, output.User.Credential.PasswordHash)
	assert.Equal(t, salt, output.User.Credential.PasswordSalt)
	assert.Equal(t, 10, output.User.Credits)
	assert.NotNil(t, output.User.Guid)
	assert.Equal(t, "signed.token.value", output.Token)
	assert.Equal(t, expiresAt, output.TokenExpiration)
	fixtures.userRepo.AssertExpectations(t)
	fixtures.hasher.AssertExpectations(t)
	fixtures.tokenService.AssertExpectations(t)
}

func TestUserService_Register_MissingFields(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	mutations := []func(*usecase.RegisterInput){
		func(in *usecase.RegisterInput) { in.FirstName = "" },
		func(in *usecase.RegisterInput) { in.LastName = "  " },
		func(in *usecase.RegisterInput) { in.Email = "" },
		func(in *usecase.RegisterInput) { in.PhoneNumber = "\t" },
		func(in *usecase.RegisterInput) { in.Password = "" },
	}

	for _, mutate := range mutations {
		input := validRegisterInput()
		mutate(input)

		output, err := fixtures.service.Register(ctx, input)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrBadRequest))
		assert.Nil(t, output)
	}

	// No repository or hasher call may have happened.
	fixtures.userRepo.AssertNotCalled(t, "ExistsByPhoneOrEmail", mock.Anything, mock.Anything, mock.Anything)
	fixtures.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_Register_ConflictOnPreCheck(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fixtures.userRepo.On("ExistsByPhoneOrEmail", ctx, input.PhoneNumber, input.Email).
		Return(true, nil)

	output, err := fixtures.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserConflict))
	assert.Nil(t, output)
	fixtures.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_Register_ConflictOnUniquenessRace(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()
	input := validRegisterInput()

	// Pre-check passes, but the insert loses the race and trips the constraint.
	fixtures.userRepo.On("ExistsByPhoneOrEmail", ctx, input.PhoneNumber, input.Email).
		Return(false, nil)
	fixtures.hasher.On("Hash", input.Password).
		Return(bytes.Repeat([]byte{0x01}, 64), bytes.Repeat([]byte{0x02}, 128), nil)
	fixtures.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	output, err := fixtures.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserConflict))
	assert.Nil(t, output)
	fixtures.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestUserService_Login_Success(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	hash := bytes.Repeat([]byte{0x01}, 64)
	salt := bytes.Repeat([]byte{0x02}, 128)
	user := &entity.User{
		ID:    42,
		Email: "jane@example.com",
		Credential: entity.Credential{
			PasswordHash: hash,
			PasswordSalt: salt,
		},
	}
	expiresAt := time.Now().AddDate(0, 6, 0)

	fixtures.userRepo.On("FindByEmail", ctx, "jane@example.com").Return(user, nil)
	fixtures.hasher.On("Verify", "Password123!", hash, salt).Return(true, nil)
	fixtures.tokenService.On("Issue", int64(42)).Return("signed.token.value", expiresAt, nil)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "jane@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "signed.token.value", output.Token)
	assert.Equal(t, expiresAt, output.TokenExpiration)
}

func TestUserService_Login_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	// Unknown email.
	fixtures := createTestUserService(t)
	fixtures.userRepo.On("FindByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, errUnknown := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	})
	require.Error(t, errUnknown)

	// Wrong password for an existing user.
	fixtures = createTestUserService(t)
	hash := bytes.Repeat([]byte{0x01}, 64)
	salt := bytes.Repeat([]byte{0x02}, 128)
	fixtures.userRepo.On("FindByEmail", ctx, "jane@example.com").Return(&entity.User{
		ID:         42,
		Email:      "jane@example.com",
		Credential: entity.Credential{PasswordHash: hash, PasswordSalt: salt},
	}, nil)
	fixtures.hasher.On("Verify", "WrongPassword!", hash, salt).Return(false, nil)

	_, errWrong := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "jane@example.com",
		Password: "WrongPassword!",
	})
	require.Error(t, errWrong)

	// Both reject with the same sentinel and the same user-facing message.
	assert.True(t, errors.Is(errUnknown, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(errWrong, domainerrors.ErrInvalidCredentials))

	var appErrUnknown, appErrWrong domainerrors.AppError
	require.True(t, errors.As(errUnknown, &appErrUnknown))
	require.True(t, errors.As(errWrong, &appErrWrong))
	assert.Equal(t, appErrUnknown.Message(), appErrWrong.Message())
	assert.Equal(t, appErrUnknown.HTTPCode(), appErrWrong.HTTPCode())
}

func TestUserService_Login_BlankInput(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	for _, input := range []*usecase.LoginInput{
		{Email: "", Password: "Password123!"},
		{Email: "jane@example.com", Password: "   "},
	} {
		output, err := fixtures.service.Login(ctx, input)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrBadRequest))
		assert.Nil(t, output)
	}

	fixtures.userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestUserService_Login_VerifyErrorIsNotInvalidCredentials(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	// A malformed stored credential is an internal fault, not a user mistake.
	shortHash := bytes.Repeat([]byte{0x01}, 10)
	salt := bytes.Repeat([]byte{0x02}, 128)
	fixtures.userRepo.On("FindByEmail", ctx, "jane@example.com").Return(&entity.User{
		ID:         42,
		Email:      "jane@example.com",
		Credential: entity.Credential{PasswordHash: shortHash, PasswordSalt: salt},
	}, nil)
	fixtures.hasher.On("Verify", "Password123!", shortHash, salt).
		Return(false, domainerrors.ErrMalformedCredential.WrapMessage("invalid length of password hash"))

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "jane@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(err, domainerrors.ErrMalformedCredential))
	assert.Nil(t, output)
}

func TestUserService_GetByID(t *testing.T) {
	fixtures := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: 42, Email: "jane@example.com"}
	fixtures.userRepo.On("FindByID", ctx, int64(42)).Return(user, nil)
	fixtures.userRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrUserNotFound)

	found, err := fixtures.service.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, user, found)

	missing, err := fixtures.service.GetByID(ctx, 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	assert.Nil(t, missing)
}
