package mock_repository

import (
	"context"

	"github.com/teacher-reviews/backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Transactor runs the callback directly, standing in for a real transaction.
type Transactor struct{}

func (Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type Cities struct {
	mock.Mock
}

func (m *Cities) GetByID(ctx context.Context, id string) (*domain.City, error) {
	args := m.Called(ctx, id)
	city, _ := args.Get(0).(*domain.City)
	return city, args.Error(1)
}

func (m *Cities) GetAll(ctx context.Context) ([]domain.City, error) {
	args := m.Called(ctx)
	cities, _ := args.Get(0).([]domain.City)
	return cities, args.Error(1)
}

func (m *Cities) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *Cities) ExistsWithName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *Cities) Create(ctx context.Context, city *domain.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

func (m *Cities) Update(ctx context.Context, city *domain.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

func (m *Cities) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type Universities struct {
	mock.Mock
}

func (m *Universities) GetByID(ctx context.Context, id string) (*domain.University, error) {
	args := m.Called(ctx, id)
	university, _ := args.Get(0).(*domain.University)
	return university, args.Error(1)
}

func (m *Universities) GetAll(ctx context.Context) ([]domain.University, error) {
	args := m.Called(ctx)
	universities, _ := args.Get(0).([]domain.University)
	return universities, args.Error(1)
}

func (m *Universities) GetAllByCityID(ctx context.Context, cityID string) ([]domain.University, error) {
	args := m.Called(ctx, cityID)
	universities, _ := args.Get(0).([]domain.University)
	return universities, args.Error(1)
}

func (m *Universities) ExistsWithNameInCity(ctx context.Context, name, cityID, excludeID string) (bool, error) {
	args := m.Called(ctx, name, cityID, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *Universities) Create(ctx context.Context, university *domain.University) error {
	args := m.Called(ctx, university)
	return args.Error(0)
}

func (m *Universities) Update(ctx context.Context, university *domain.University) error {
	args := m.Called(ctx, university)
	return args.Error(0)
}

func (m *Universities) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type Teachers struct {
	mock.Mock
}

func (m *Teachers) GetByID(ctx context.Context, id string) (*domain.Teacher, error) {
	args := m.Called(ctx, id)
	teacher, _ := args.Get(0).(*domain.Teacher)
	return teacher, args.Error(1)
}

func (m *Teachers) GetAll(ctx context.Context) ([]domain.Teacher, error) {
	args := m.Called(ctx)
	teachers, _ := args.Get(0).([]domain.Teacher)
	return teachers, args.Error(1)
}

func (m *Teachers) GetAllByUniversityID(ctx context.Context, universityID string) ([]domain.Teacher, error) {
	args := m.Called(ctx, universityID)
	teachers, _ := args.Get(0).([]domain.Teacher)
	return teachers, args.Error(1)
}

func (m *Teachers) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *Teachers) Create(ctx context.Context, teacher *domain.Teacher) error {
	args := m.Called(ctx, teacher)
	return args.Error(0)
}

func (m *Teachers) Update(ctx context.Context, teacher *domain.Teacher) error {
	args := m.Called(ctx, teacher)
	return args.Error(0)
}

func (m *Teachers) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type Reviews struct {
	mock.Mock
}

func (m *Reviews) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	args := m.Called(ctx, id)
	review, _ := args.Get(0).(*domain.Review)
	return review, args.Error(1)
}

func (m *Reviews) GetAll(ctx context.Context) ([]domain.Review, error) {
	args := m.Called(ctx)
	reviews, _ := args.Get(0).([]domain.Review)
	return reviews, args.Error(1)
}

func (m *Reviews) GetAllByTeacherID(ctx context.Context, teacherID string) ([]domain.Review, error) {
	args := m.Called(ctx, teacherID)
	reviews, _ := args.Get(0).([]domain.Review)
	return reviews, args.Error(1)
}

func (m *Reviews) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *Reviews) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type AdminUsers struct {
	mock.Mock
}

func (m *AdminUsers) GetByID(ctx context.Context, id int64) (*domain.AdminUser, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.AdminUser)
	return user, args.Error(1)
}

func (m *AdminUsers) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*domain.AdminUser)
	return user, args.Error(1)
}

func (m *AdminUsers) Create(ctx context.Context, user *domain.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *AdminUsers) Update(ctx context.Context, user *domain.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *AdminUsers) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
