package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"travelmate/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, role string) (string, error) { return "token", nil }

func TestService_Signup_Success(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "nadia").Return(nil, gorm.ErrRecordNotFound)
	users.On("GetByEmail", mock.Anything, "nadia@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(users, stubJWT{})

	user, err := service.Signup(context.Background(), SignupRequest{
		Username:  "nadia",
		Email:     "Nadia@Example.com",
		Password:  "supersecret",
		FirstName: "Nadia",
		LastName:  "Islam",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "nadia@example.com", user.Email)
	assert.Equal(t, domain.RoleTraveller, user.Role)
	assert.Empty(t, user.PasswordHash)
}

func TestService_Signup_DuplicateUsername(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "nadia").Return(&domain.User{ID: 1, Username: "nadia"}, nil)

	service := NewService(users, stubJWT{})

	_, err := service.Signup(context.Background(), SignupRequest{
		Username:  "nadia",
		Email:     "other@example.com",
		Password:  "supersecret",
		FirstName: "Nadia",
	})

	assert.ErrorIs(t, err, ErrUsernameTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Signup_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "fresh").Return(nil, gorm.ErrRecordNotFound)
	users.On("GetByEmail", mock.Anything, "taken@example.com").Return(&domain.User{ID: 2}, nil)

	service := NewService(users, stubJWT{})

	_, err := service.Signup(context.Background(), SignupRequest{
		Username:  "fresh",
		Email:     "taken@example.com",
		Password:  "supersecret",
		FirstName: "Fresh",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Signup_BadBirthDate(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "rifat").Return(nil, gorm.ErrRecordNotFound)
	users.On("GetByEmail", mock.Anything, "rifat@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, stubJWT{})

	_, err := service.Signup(context.Background(), SignupRequest{
		Username:    "rifat",
		Email:       "rifat@example.com",
		Password:    "supersecret",
		FirstName:   "Rifat",
		DateOfBirth: "31-12-1990",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Login_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "nadia").Return(&domain.User{
		ID:           7,
		Username:     "nadia",
		PasswordHash: string(hash),
		Role:         domain.RoleTraveller,
	}, nil)

	service := NewService(users, stubJWT{})

	result, err := service.Login(context.Background(), LoginRequest{Username: "nadia", Password: "supersecret"})

	assert.NoError(t, err)
	assert.Equal(t, "token", result.Token)
	assert.Empty(t, result.User.PasswordHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "nadia").Return(&domain.User{
		ID:           7,
		PasswordHash: string(hash),
	}, nil)

	service := NewService(users, stubJWT{})

	_, err := service.Login(context.Background(), LoginRequest{Username: "nadia", Password: "nope"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, stubJWT{})

	_, err := service.Login(context.Background(), LoginRequest{Username: "ghost", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
