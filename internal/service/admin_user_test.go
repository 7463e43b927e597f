package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/teacher-reviews/backend/internal/config"
	"github.com/teacher-reviews/backend/internal/domain"
	mock_repository "github.com/teacher-reviews/backend/internal/repository/mocks"
	"github.com/teacher-reviews/backend/pkg/hash"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAdminUserService(repo *mock_repository.AdminUsers, authConfig config.AuthConfig) *adminUserService {
	return newAdminUserService(repo, hash.NewBcryptHasher(bcrypt.MinCost), mock_repository.Transactor{}, authConfig)
}

func TestAdminUserService_Create(t *testing.T) {
	repo := new(mock_repository.AdminUsers)
	repo.On("GetByUsername", mock.Anything, "root").Return(nil, domain.ErrNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.AdminUser")).Return(nil)

	s := newTestAdminUserService(repo, config.AuthConfig{})

	user, err := s.Create(context.Background(), domain.AdminUser{Username: "root", Password: "secret"})
	require.NoError(t, err)
	require.NotEqual(t, "secret", user.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))

	repo.AssertExpectations(t)
}

func TestAdminUserService_Create_UsernameTaken(t *testing.T) {
	repo := new(mock_repository.AdminUsers)
	repo.On("GetByUsername", mock.Anything, "root").
		Return(&domain.AdminUser{ID: 1, Username: "root"}, nil)

	s := newTestAdminUserService(repo, config.AuthConfig{})

	_, err := s.Create(context.Background(), domain.AdminUser{Username: "root", Password: "secret"})
	requireAPIError(t, err, http.StatusBadRequest, "AdminUser with Username = root already exists")

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminUserService_Update_NotFound(t *testing.T) {
	repo := new(mock_repository.AdminUsers)
	repo.On("GetByID", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)

	s := newTestAdminUserService(repo, config.AuthConfig{})

	_, err := s.Update(context.Background(), domain.AdminUser{ID: 7, Username: "root", Password: "secret"})
	requireAPIError(t, err, http.StatusBadRequest, "AdminUser with id 7 not found")
}

func TestAdminUserService_Update_UsernameHeldByOtherUser(t *testing.T) {
	repo := new(mock_repository.AdminUsers)
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.AdminUser{ID: 1, Username: "root"}, nil)
	repo.On("GetByUsername", mock.Anything, "admin").
		Return(&domain.AdminUser{ID: 2, Username: "admin"}, nil)

	s := newTestAdminUserService(repo, config.AuthConfig{})

	_, err := s.Update(context.Background(), domain.AdminUser{ID: 1, Username: "admin", Password: "secret"})
	requireAPIError(t, err, http.StatusBadRequest, "AdminUser with Username = admin already exists")

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdminUserService_Update_KeepOwnUsername(t *testing.T) {
	repo := new(mock_repository.AdminUsers)
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.AdminUser{ID: 1, Username: "root"}, nil)
	repo.On("GetByUsername", mock.Anything, "root").
		Return(&domain.AdminUser{ID: 1, Username: "root"}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.AdminUser")).Return(nil)

	s := newTestAdminUserService(repo, config.AuthConfig{})

	_, err := s.Update(context.Background(), domain.AdminUser{ID: 1, Username: "root", Password: "rotated"})
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestAdminUserService_Authenticate_StoredUser(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(mock_repository.AdminUsers)
	repo.On("GetByUsername", mock.Anything, "root").
		Return(&domain.AdminUser{ID: 1, Username: "root", Password: string(hashed)}, nil)

	s := newTestAdminUserService(repo, config.AuthConfig{})

	ok, err := s.Authenticate(context.Background(), "root", "secret")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.Authenticate(context.Background(), "root", "wrong")
	require.NoError(t, err)
	require.False(t, ok)
}

// A hash produced with a weaker cost still authenticates; it only signals
// that a rehash is due.
func TestAdminUserService_Authenticate_RehashNeededStillSucceeds(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(mock_repository.AdminUsers)
	repo.On("GetByUsername", mock.Anything, "root").
		Return(&domain.AdminUser{ID: 1, Username: "root", Password: string(hashed)}, nil)

	service := newAdminUserService(repo, hash.NewBcryptHasher(bcrypt.DefaultCost), mock_repository.Transactor{}, config.AuthConfig{})

	ok, err := service.Authenticate(context.Background(), "root", "secret")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAdminUserService_Authenticate_ConfigFallback(t *testing.T) {
	repo := new(mock_repository.AdminUsers)
	repo.On("GetByUsername", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	s := newTestAdminUserService(repo, config.AuthConfig{
		MainAdminUsername: "root",
		MainAdminPassword: "secret",
	})

	ok, err := s.Authenticate(context.Background(), "root", "secret")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.Authenticate(context.Background(), "root", "wrong")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = s.Authenticate(context.Background(), "intruder", "secret")
	require.NoError(t, err)
	require.False(t, ok)
}

// Legacy behavior carried over from the previous deployment: an unset
// fallback credential pair authenticates any request.
func TestAdminUserService_Authenticate_UnsetFallbackAlwaysSucceeds(t *testing.T) {
	repo := new(mock_repository.AdminUsers)
	repo.On("GetByUsername", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	s := newTestAdminUserService(repo, config.AuthConfig{})

	ok, err := s.Authenticate(context.Background(), "anyone", "anything")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAdminUserService_Delete_NotFound(t *testing.T) {
	repo := new(mock_repository.AdminUsers)
	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, domain.ErrNotFound)

	s := newTestAdminUserService(repo, config.AuthConfig{})

	_, err := s.Delete(context.Background(), 9)
	requireAPIError(t, err, http.StatusBadRequest, "AdminUser with id 9 not found")
}
