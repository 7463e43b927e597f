package service

import (
	"context"
	"errors"

	"github.com/teacher-reviews/backend/internal/domain"
	"github.com/teacher-reviews/backend/internal/repository"

	"github.com/google/uuid"
)

type universityService struct {
	universityRepository repository.Universities
	cityRepository       repository.Cities
	teacherRepository    repository.Teachers
	txManager            repository.Transactor
}

func newUniversityService(
	universityRepository repository.Universities,
	cityRepository repository.Cities,
	teacherRepository repository.Teachers,
	txManager repository.Transactor,
) *universityService {
	return &universityService{
		universityRepository: universityRepository,
		cityRepository:       cityRepository,
		teacherRepository:    teacherRepository,
		txManager:            txManager,
	}
}

func (s *universityService) GetByID(ctx context.Context, id string) (*domain.University, error) {
	university, err := s.universityRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewEntityNotFoundError("University", id)
		}
		return nil, err
	}
	return university, nil
}

func (s *universityService) GetAll(ctx context.Context) ([]domain.University, error) {
	return s.universityRepository.GetAll(ctx)
}

func (s *universityService) Create(ctx context.Context, university domain.University) (*domain.University, error) {
	university.ID = uuid.NewString()

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkCityExists(ctx, university.CityID); err != nil {
			return err
		}

		taken, err := s.universityRepository.ExistsWithNameInCity(ctx, university.Name, university.CityID, "")
		if err != nil {
			return err
		}
		if taken {
			return domain.NewEntityExistsError("University", "Name", university.Name)
		}

		if err := s.universityRepository.Create(ctx, &university); err != nil {
			if errors.Is(err, domain.ErrDuplicateEntry) {
				return domain.NewEntityExistsError("University", "Name", university.Name)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &university, nil
}

func (s *universityService) Update(ctx context.Context, university domain.University) (*domain.University, error) {
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.universityRepository.GetByID(ctx, university.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewEntityNotFoundError("University", university.ID)
			}
			return err
		}

		if err := s.checkCityExists(ctx, university.CityID); err != nil {
			return err
		}

		// The name only has to be free among the OTHER universities of the
		// city; an unchanged name must not conflict with itself.
		taken, err := s.universityRepository.ExistsWithNameInCity(ctx, university.Name, university.CityID, university.ID)
		if err != nil {
			return err
		}
		if taken {
			return domain.NewEntityExistsError("University", "Name", university.Name)
		}

		if err := s.universityRepository.Update(ctx, &university); err != nil {
			if errors.Is(err, domain.ErrDuplicateEntry) {
				return domain.NewEntityExistsError("University", "Name", university.Name)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &university, nil
}

func (s *universityService) Delete(ctx context.Context, id string) (*domain.University, error) {
	var university *domain.University

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		university, err = s.universityRepository.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewEntityNotFoundError("University", id)
			}
			return err
		}
		return s.universityRepository.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return university, nil
}

func (s *universityService) GetCity(ctx context.Context, universityID string) (*domain.City, error) {
	university, err := s.GetByID(ctx, universityID)
	if err != nil {
		return nil, err
	}

	city, err := s.cityRepository.GetByID(ctx, university.CityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewEntityNotFoundError("City", university.CityID)
		}
		return nil, err
	}
	return city, nil
}

func (s *universityService) GetTeachers(ctx context.Context, universityID string) ([]domain.Teacher, error) {
	if _, err := s.GetByID(ctx, universityID); err != nil {
		return nil, err
	}
	return s.teacherRepository.GetAllByUniversityID(ctx, universityID)
}

func (s *universityService) checkCityExists(ctx context.Context, cityID string) error {
	if _, err := s.cityRepository.GetByID(ctx, cityID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewEntityNotFoundError("City", cityID)
		}
		return err
	}
	return nil
}
