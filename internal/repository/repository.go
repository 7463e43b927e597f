package repository

import (
	"context"

	"github.com/teacher-reviews/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Cities       Cities
	Universities Universities
	Teachers     Teachers
	Reviews      Reviews
	AdminUsers   AdminUsers
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Cities:       newCityRepository(db),
		Universities: newUniversityRepository(db),
		Teachers:     newTeacherRepository(db),
		Reviews:      newReviewRepository(db),
		AdminUsers:   newAdminUserRepository(db),
	}
}

type Cities interface {
	GetByID(ctx context.Context, id string) (*domain.City, error)
	GetAll(ctx context.Context) ([]domain.City, error)
	Exists(ctx context.Context, id string) (bool, error)
	ExistsWithName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, city *domain.City) error
	Update(ctx context.Context, city *domain.City) error
	Delete(ctx context.Context, id string) error
}

type Universities interface {
	GetByID(ctx context.Context, id string) (*domain.University, error)
	GetAll(ctx context.Context) ([]domain.University, error)
	GetAllByCityID(ctx context.Context, cityID string) ([]domain.University, error)
	ExistsWithNameInCity(ctx context.Context, name, cityID, excludeID string) (bool, error)
	Create(ctx context.Context, university *domain.University) error
	Update(ctx context.Context, university *domain.University) error
	Delete(ctx context.Context, id string) error
}

type Teachers interface {
	GetByID(ctx context.Context, id string) (*domain.Teacher, error)
	GetAll(ctx context.Context) ([]domain.Teacher, error)
	GetAllByUniversityID(ctx context.Context, universityID string) ([]domain.Teacher, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, teacher *domain.Teacher) error
	Update(ctx context.Context, teacher *domain.Teacher) error
	Delete(ctx context.Context, id string) error
}

type Reviews interface {
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	GetAll(ctx context.Context) ([]domain.Review, error)
	GetAllByTeacherID(ctx context.Context, teacherID string) ([]domain.Review, error)
	Create(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id string) error
}

type AdminUsers interface {
	GetByID(ctx context.Context, id int64) (*domain.AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	Create(ctx context.Context, user *domain.AdminUser) error
	Update(ctx context.Context, user *domain.AdminUser) error
	Delete(ctx context.Context, id int64) error
}
