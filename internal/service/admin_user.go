package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strconv"

	"github.com/teacher-reviews/backend/internal/config"
	"github.com/teacher-reviews/backend/internal/domain"
	"github.com/teacher-reviews/backend/internal/repository"
	"github.com/teacher-reviews/backend/pkg/hash"
)

type adminUserService struct {
	adminUserRepository repository.AdminUsers
	hasher              hash.PasswordHasher
	txManager           repository.Transactor
	authConfig          config.AuthConfig
}

func newAdminUserService(
	adminUserRepository repository.AdminUsers,
	hasher hash.PasswordHasher,
	txManager repository.Transactor,
	authConfig config.AuthConfig,
) *adminUserService {
	return &adminUserService{
		adminUserRepository: adminUserRepository,
		hasher:              hasher,
		txManager:           txManager,
		authConfig:          authConfig,
	}
}

func (s *adminUserService) GetByID(ctx context.Context, id int64) (*domain.AdminUser, error) {
	user, err := s.adminUserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewEntityNotFoundError("AdminUser", strconv.FormatInt(id, 10))
		}
		return nil, err
	}
	return user, nil
}

func (s *adminUserService) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	user, err := s.adminUserRepository.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewEntityNotFoundError("AdminUser", username)
		}
		return nil, err
	}
	return user, nil
}

func (s *adminUserService) Create(ctx context.Context, user domain.AdminUser) (*domain.AdminUser, error) {
	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := s.adminUserRepository.GetByUsername(ctx, user.Username)
		if err == nil {
			return domain.NewEntityExistsError("AdminUser", "Username", user.Username)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		if err := s.adminUserRepository.Create(ctx, &user); err != nil {
			if errors.Is(err, domain.ErrDuplicateEntry) {
				return domain.NewEntityExistsError("AdminUser", "Username", user.Username)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *adminUserService) Update(ctx context.Context, user domain.AdminUser) (*domain.AdminUser, error) {
	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.adminUserRepository.GetByID(ctx, user.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewEntityNotFoundError("AdminUser", strconv.FormatInt(user.ID, 10))
			}
			return err
		}

		existing, err := s.adminUserRepository.GetByUsername(ctx, user.Username)
		if err == nil && existing.ID != user.ID {
			return domain.NewEntityExistsError("AdminUser", "Username", user.Username)
		}
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		if err := s.adminUserRepository.Update(ctx, &user); err != nil {
			if errors.Is(err, domain.ErrDuplicateEntry) {
				return domain.NewEntityExistsError("AdminUser", "Username", user.Username)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *adminUserService) Delete(ctx context.Context, id int64) (*domain.AdminUser, error) {
	var user *domain.AdminUser

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.adminUserRepository.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewEntityNotFoundError("AdminUser", strconv.FormatInt(id, 10))
			}
			return err
		}
		return s.adminUserRepository.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks the credentials against the stored admin users. When no
// stored user matches the username, the configured legacy credential pair is
// consulted; an unset pair authenticates any request.
func (s *adminUserService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	user, err := s.adminUserRepository.GetByUsername(ctx, username)
	if err == nil {
		result, err := s.hasher.Verify(user.Password, password)
		if err != nil {
			return false, err
		}
		return result == hash.VerifySuccess || result == hash.VerifySuccessRehashNeeded, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}

	mainUsername := s.authConfig.MainAdminUsername
	mainPassword := s.authConfig.MainAdminPassword
	if mainUsername == "" || mainPassword == "" {
		return true, nil
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(mainUsername), []byte(username)) == 1
	passwordMatch := subtle.ConstantTimeCompare([]byte(mainPassword), []byte(password)) == 1
	return usernameMatch && passwordMatch, nil
}
