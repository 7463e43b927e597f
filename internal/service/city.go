package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/teacher-reviews/backend/internal/domain"
	"github.com/teacher-reviews/backend/internal/repository"
	"github.com/teacher-reviews/backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cityListCacheKey = "cities:all"

type cityService struct {
	cityRepository       repository.Cities
	universityRepository repository.Universities
	txManager            repository.Transactor
	cache                redis.UniversalClient
	cacheTTL             time.Duration
}

func newCityService(
	cityRepository repository.Cities,
	universityRepository repository.Universities,
	txManager repository.Transactor,
	cache redis.UniversalClient,
	cacheTTL time.Duration,
) *cityService {
	return &cityService{
		cityRepository:       cityRepository,
		universityRepository: universityRepository,
		txManager:            txManager,
		cache:                cache,
		cacheTTL:             cacheTTL,
	}
}

func (s *cityService) GetByID(ctx context.Context, id string) (*domain.City, error) {
	city, err := s.cityRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewEntityNotFoundError("City", id)
		}
		return nil, err
	}
	return city, nil
}

func (s *cityService) GetAll(ctx context.Context) ([]domain.City, error) {
	if cities, ok := s.cachedList(ctx); ok {
		return cities, nil
	}

	cities, err := s.cityRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	s.storeList(ctx, cities)
	return cities, nil
}

func (s *cityService) Create(ctx context.Context, city domain.City) (*domain.City, error) {
	city.ID = uuid.NewString()

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		taken, err := s.cityRepository.ExistsWithName(ctx, city.Name)
		if err != nil {
			return err
		}
		if taken {
			return domain.NewEntityExistsError("City", "Name", city.Name)
		}

		if err := s.cityRepository.Create(ctx, &city); err != nil {
			// Unique key on name is the authoritative guard; the check
			// above only exists for the friendlier error message.
			if errors.Is(err, domain.ErrDuplicateEntry) {
				return domain.NewEntityExistsError("City", "Name", city.Name)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return &city, nil
}

// Update re-checks the name against every city, the updated one included, so
// renaming a city to its current name fails with an exists error.
func (s *cityService) Update(ctx context.Context, city domain.City) (*domain.City, error) {
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		taken, err := s.cityRepository.ExistsWithName(ctx, city.Name)
		if err != nil {
			return err
		}
		if taken {
			return domain.NewEntityExistsError("City", "Name", city.Name)
		}

		if err := s.cityRepository.Update(ctx, &city); err != nil {
			if errors.Is(err, domain.ErrDuplicateEntry) {
				return domain.NewEntityExistsError("City", "Name", city.Name)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return &city, nil
}

func (s *cityService) Delete(ctx context.Context, id string) (*domain.City, error) {
	var city *domain.City

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		city, err = s.cityRepository.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewEntityNotFoundError("City", id)
			}
			return err
		}

		// Universities, teachers and reviews under the city go with it,
		// cascaded by the schema.
		return s.cityRepository.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return city, nil
}

// GetUniversities lists the universities of a city without checking that the
// city itself exists; callers pre-validate when they need that guarantee.
func (s *cityService) GetUniversities(ctx context.Context, cityID string) ([]domain.University, error) {
	return s.universityRepository.GetAllByCityID(ctx, cityID)
}

func (s *cityService) cachedList(ctx context.Context) ([]domain.City, bool) {
	if s.cache == nil {
		return nil, false
	}

	payload, err := s.cache.Get(ctx, cityListCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("city list cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var cities []domain.City
	if err := json.Unmarshal(payload, &cities); err != nil {
		logger.Warn("city list cache decode failed", zap.Error(err))
		return nil, false
	}
	return cities, true
}

func (s *cityService) storeList(ctx context.Context, cities []domain.City) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(cities)
	if err != nil {
		logger.Warn("city list cache encode failed", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, cityListCacheKey, payload, s.cacheTTL).Err(); err != nil {
		logger.Warn("city list cache write failed", zap.Error(err))
	}
}

func (s *cityService) invalidateList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cityListCacheKey).Err(); err != nil {
		logger.Warn("city list cache invalidation failed", zap.Error(err))
	}
}
