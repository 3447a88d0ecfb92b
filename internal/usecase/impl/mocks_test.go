package impl

import (
	"context"
	"time"

	"linkup/internal/domain/entity"
	"linkup/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// mockUserRepository is a testify mock of repository.UserRepository.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, record *entity.User) error {
	return m.Called(ctx, record).Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, record *entity.User) error {
	return m.Called(ctx, record).Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) ExistsByPhoneOrEmail(ctx context.Context, phoneNumber, email string) (bool, error) {
	args := m.Called(ctx, phoneNumber, email)

	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) DecrementCredits(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// mockPasswordHasher is a testify mock of service.PasswordHasher.
type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) ([]byte, []byte, error) {
	args := m.Called(password)

	hash, _ := args.Get(0).([]byte)
	salt, _ := args.Get(1).([]byte)

	return hash, salt, args.Error(2)
}

func (m *mockPasswordHasher) Verify(password string, storedHash, storedSalt []byte) (bool, error) {
	args := m.Called(password, storedHash, storedSalt)

	return args.Bool(0), args.Error(1)
}

// mockTokenService is a testify mock of service.TokenService.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID int64) (string, time.Time, error) {
	args := m.Called(userID)

	expiresAt, _ := args.Get(1).(time.Time)

	return args.String(0), expiresAt, args.Error(2)
}

func (m *mockTokenService) Validate(token string) (int64, error) {
	args := m.Called(token)

	return args.Get(0).(int64), args.Error(1)
}

// mockResumeParser is a testify mock of service.ResumeParser.
type mockResumeParser struct {
	mock.Mock
}

func (m *mockResumeParser) Parse(ctx context.Context, document []byte, contentType string) (*service.ParsedResume, error) {
	args := m.Called(ctx, document, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.ParsedResume), args.Error(1)
}
