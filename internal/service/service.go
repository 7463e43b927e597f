package service

import (
	"context"

	"github.com/teacher-reviews/backend/internal/config"
	"github.com/teacher-reviews/backend/internal/domain"
	"github.com/teacher-reviews/backend/internal/repository"
	"github.com/teacher-reviews/backend/pkg/hash"

	"github.com/redis/go-redis/v9"
)

type Services struct {
	Cities       Cities
	Universities Universities
	Teachers     Teachers
	Reviews      Reviews
	AdminUsers   AdminUsers
}

type Deps struct {
	Config    *config.Config
	Hasher    hash.PasswordHasher
	Repos     *repository.Repositories
	TxManager repository.Transactor
	// Cache is optional; a nil client disables list caching.
	Cache redis.UniversalClient
}

func NewServices(deps Deps) *Services {
	return &Services{
		Cities: newCityService(
			deps.Repos.Cities,
			deps.Repos.Universities,
			deps.TxManager,
			deps.Cache,
			deps.Config.Cache.TTL,
		),
		Universities: newUniversityService(
			deps.Repos.Universities,
			deps.Repos.Cities,
			deps.Repos.Teachers,
			deps.TxManager,
		),
		Teachers: newTeacherService(
			deps.Repos.Teachers,
			deps.Repos.Universities,
			deps.Repos.Reviews,
			deps.TxManager,
		),
		Reviews: newReviewService(
			deps.Repos.Reviews,
			deps.Repos.Teachers,
			deps.TxManager,
		),
		AdminUsers: newAdminUserService(
			deps.Repos.AdminUsers,
			deps.Hasher,
			deps.TxManager,
			deps.Config.Auth,
		),
	}
}

type Cities interface {
	GetByID(ctx context.Context, id string) (*domain.City, error)
	GetAll(ctx context.Context) ([]domain.City, error)
	Create(ctx context.Context, city domain.City) (*domain.City, error)
	Update(ctx context.Context, city domain.City) (*domain.City, error)
	Delete(ctx context.Context, id string) (*domain.City, error)
	GetUniversities(ctx context.Context, cityID string) ([]domain.University, error)
}

type Universities interface {
	GetByID(ctx context.Context, id string) (*domain.University, error)
	GetAll(ctx context.Context) ([]domain.University, error)
	Create(ctx context.Context, university domain.University) (*domain.University, error)
	Update(ctx context.Context, university domain.University) (*domain.University, error)
	Delete(ctx context.Context, id string) (*domain.University, error)
	GetCity(ctx context.Context, universityID string) (*domain.City, error)
	GetTeachers(ctx context.Context, universityID string) ([]domain.Teacher, error)
}

type Teachers interface {
	GetByID(ctx context.Context, id string) (*domain.Teacher, error)
	GetAll(ctx context.Context) ([]domain.Teacher, error)
	Create(ctx context.Context, teacher domain.Teacher) (*domain.Teacher, error)
	Update(ctx context.Context, teacher domain.Teacher) (*domain.Teacher, error)
	Delete(ctx context.Context, id string) (*domain.Teacher, error)
	GetReviews(ctx context.Context, teacherID string) ([]domain.Review, error)
	GetUniversity(ctx context.Context, teacherID string) (*domain.University, error)
}

type Reviews interface {
	GetAll(ctx context.Context) ([]domain.Review, error)
	Create(ctx context.Context, review domain.Review) (*domain.Review, error)
	Delete(ctx context.Context, id string) (*domain.Review, error)
}

type AdminUsers interface {
	GetByID(ctx context.Context, id int64) (*domain.AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	Create(ctx context.Context, user domain.AdminUser) (*domain.AdminUser, error)
	Update(ctx context.Context, user domain.AdminUser) (*domain.AdminUser, error)
	Delete(ctx context.Context, id int64) (*domain.AdminUser, error)
	Authenticate(ctx context.Context, username, password string) (bool, error)
}
