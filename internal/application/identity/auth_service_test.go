package identity

import (
	"context"
	"testing"
	"time"

	"github.com/bizledger/backend/internal/domain/identity"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockRegistrationRepository is a mock implementation of identity.RegistrationRepository
type MockRegistrationRepository struct {
	mock.Mock
}

func (m *MockRegistrationRepository) CreateCompanyWithAdmin(ctx context.Context, company *identity.Company, admin *identity.User) error {
	args := m.Called(ctx, company, admin)
	return args.Error(0)
}

func newTestAuthService(userRepo *MockUserRepository, registrationRepo *MockRegistrationRepository) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{Secret: "test-secret", TokenTTL: time.Hour})
	return NewAuthService(userRepo, registrationRepo, jwtService, zap.NewNop())
}

func testUser(t *testing.T, password string) *identity.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user, err := identity.NewUser(uuid.New(), "owner@example.com", hash, "Asha", "Patel", identity.RoleAdmin)
	require.NoError(t, err)
	return user
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("returns token for valid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		registrationRepo := new(MockRegistrationRepository)
		service := newTestAuthService(userRepo, registrationRepo)

		user := testUser(t, "correct-horse")
		userRepo.On("FindByEmail", ctx, "owner@example.com").Return(user, nil)

		response, err := service.Login(ctx, LoginRequest{Email: "Owner@Example.com", Password: "correct-horse"})
		require.NoError(t, err)
		assert.NotEmpty(t, response.AccessToken)
		assert.Equal(t, "Bearer", response.TokenType)
		assert.Equal(t, user.Email, response.User.Email)
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		registrationRepo := new(MockRegistrationRepository)
		service := newTestAuthService(userRepo, registrationRepo)

		user := testUser(t, "correct-horse")
		userRepo.On("FindByEmail", ctx, "owner@example.com").Return(user, nil)

		_, err := service.Login(ctx, LoginRequest{Email: "owner@example.com", Password: "wrong"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("rejects unknown email with the same error", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		registrationRepo := new(MockRegistrationRepository)
		service := newTestAuthService(userRepo, registrationRepo)

		userRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, shared.ErrNotFound)

		_, err := service.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "anything"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("rejects deactivated account", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		registrationRepo := new(MockRegistrationRepository)
		service := newTestAuthService(userRepo, registrationRepo)

		user := testUser(t, "correct-horse")
		user.SetActive(false)
		userRepo.On("FindByEmail", ctx, "owner@example.com").Return(user, nil)

		_, err := service.Login(ctx, LoginRequest{Email: "owner@example.com", Password: "correct-horse"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_INACTIVE", domainErr.Code)
	})
}

func TestAuthServiceRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates company and admin atomically", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		registrationRepo := new(MockRegistrationRepository)
		service := newTestAuthService(userRepo, registrationRepo)

		userRepo.On("ExistsByEmail", ctx, "founder@example.com").Return(false, nil)
		registrationRepo.On("CreateCompanyWithAdmin", ctx, mock.AnythingOfType("*identity.Company"), mock.AnythingOfType("*identity.User")).
			Run(func(args mock.Arguments) {
				company := args.Get(1).(*identity.Company)
				admin := args.Get(2).(*identity.User)
				assert.Equal(t, "Mehta Traders", company.Name)
				assert.Equal(t, "INR", company.Currency)
				assert.Equal(t, company.ID, admin.TenantID)
				assert.Equal(t, identity.RoleAdmin, admin.Role)
			}).
			Return(nil)

		response, err := service.Register(ctx, RegisterRequest{
			CompanyName: "Mehta Traders",
			Email:       "Founder@Example.com",
			Password:    "s3cret-password",
			FirstName:   "Ravi",
			LastName:    "Mehta",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, response.AccessToken)
		assert.Equal(t, "founder@example.com", response.User.Email)
		assert.Equal(t, "ADMIN", response.User.Role)
		registrationRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email before writing anything", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		registrationRepo := new(MockRegistrationRepository)
		service := newTestAuthService(userRepo, registrationRepo)

		userRepo.On("ExistsByEmail", ctx, "founder@example.com").Return(true, nil)

		_, err := service.Register(ctx, RegisterRequest{
			CompanyName: "Mehta Traders",
			Email:       "founder@example.com",
			Password:    "s3cret-password",
			FirstName:   "Ravi",
			LastName:    "Mehta",
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		registrationRepo.AssertNotCalled(t, "CreateCompanyWithAdmin", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthServiceChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the hash when the old password matches", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		registrationRepo := new(MockRegistrationRepository)
		service := newTestAuthService(userRepo, registrationRepo)

		user := testUser(t, "old-password")
		oldHash := user.PasswordHash
		userRepo.On("FindByIDForTenant", ctx, user.TenantID, user.ID).Return(user, nil)
		userRepo.On("Save", ctx, user).Return(nil)

		err := service.ChangePassword(ctx, user.TenantID, user.ID, ChangePasswordRequest{
			OldPassword: "old-password",
			NewPassword: "new-password",
		})
		require.NoError(t, err)
		assert.NotEqual(t, oldHash, user.PasswordHash)
		assert.True(t, auth.VerifyPassword(user.PasswordHash, "new-password"))
	})

	t.Run("rejects wrong old password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		registrationRepo := new(MockRegistrationRepository)
		service := newTestAuthService(userRepo, registrationRepo)

		user := testUser(t, "old-password")
		userRepo.On("FindByIDForTenant", ctx, user.TenantID, user.ID).Return(user, nil)

		err := service.ChangePassword(ctx, user.TenantID, user.ID, ChangePasswordRequest{
			OldPassword: "wrong",
			NewPassword: "new-password",
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
		userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
