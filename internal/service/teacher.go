package service

import (
	"context"
	"errors"

	"github.com/teacher-reviews/backend/internal/domain"
	"github.com/teacher-reviews/backend/internal/repository"

	"github.com/google/uuid"
)

type teacherService struct {
	teacherRepository    repository.Teachers
	universityRepository repository.Universities
	reviewRepository     repository.Reviews
	txManager            repository.Transactor
}

func newTeacherService(
	teacherRepository repository.Teachers,
	universityRepository repository.Universities,
	reviewRepository repository.Reviews,
	txManager repository.Transactor,
) *teacherService {
	return &teacherService{
		teacherRepository:    teacherRepository,
		universityRepository: universityRepository,
		reviewRepository:     reviewRepository,
		txManager:            txManager,
	}
}

func (s *teacherService) GetByID(ctx context.Context, id string) (*domain.Teacher, error) {
	teacher, err := s.teacherRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewEntityNotFoundError("Teacher", id)
		}
		return nil, err
	}
	return teacher, nil
}

func (s *teacherService) GetAll(ctx context.Context) ([]domain.Teacher, error) {
	return s.teacherRepository.GetAll(ctx)
}

func (s *teacherService) Create(ctx context.Context, teacher domain.Teacher) (*domain.Teacher, error) {
	teacher.ID = uuid.NewString()

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkUniversityExists(ctx, teacher.UniversityID); err != nil {
			return err
		}
		return s.teacherRepository.Create(ctx, &teacher)
	})
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (s *teacherService) Update(ctx context.Context, teacher domain.Teacher) (*domain.Teacher, error) {
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.teacherRepository.GetByID(ctx, teacher.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewEntityNotFoundError("Teacher", teacher.ID)
			}
			return err
		}

		if err := s.checkUniversityExists(ctx, teacher.UniversityID); err != nil {
			return err
		}
		return s.teacherRepository.Update(ctx, &teacher)
	})
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (s *teacherService) Delete(ctx context.Context, id string) (*domain.Teacher, error) {
	var teacher *domain.Teacher

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		teacher, err = s.teacherRepository.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewEntityNotFoundError("Teacher", id)
			}
			return err
		}

		// Reviews of the teacher are cascaded by the schema.
		return s.teacherRepository.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *teacherService) GetReviews(ctx context.Context, teacherID string) ([]domain.Review, error) {
	if _, err := s.GetByID(ctx, teacherID); err != nil {
		return nil, err
	}
	return s.reviewRepository.GetAllByTeacherID(ctx, teacherID)
}

func (s *teacherService) GetUniversity(ctx context.Context, teacherID string) (*domain.University, error) {
	teacher, err := s.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	university, err := s.universityRepository.GetByID(ctx, teacher.UniversityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewEntityNotFoundError("University", teacher.UniversityID)
		}
		return nil, err
	}
	return university, nil
}

func (s *teacherService) checkUniversityExists(ctx context.Context, universityID string) error {
	if _, err := s.universityRepository.GetByID(ctx, universityID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewEntityNotFoundError("University", universityID)
		}
		return err
	}
	return nil
}
