package service

import (
	"context"
	"errors"

	"github.com/teacher-reviews/backend/internal/domain"
	"github.com/teacher-reviews/backend/internal/repository"

	"github.com/google/uuid"
)

type reviewService struct {
	reviewRepository  repository.Reviews
	teacherRepository repository.Teachers
	txManager         repository.Transactor
}

func newReviewService(
	reviewRepository repository.Reviews,
	teacherRepository repository.Teachers,
	txManager repository.Transactor,
) *reviewService {
	return &reviewService{
		reviewRepository:  reviewRepository,
		teacherRepository: teacherRepository,
		txManager:         txManager,
	}
}

func (s *reviewService) GetAll(ctx context.Context) ([]domain.Review, error) {
	return s.reviewRepository.GetAll(ctx)
}

// Create persists a review. CreateDate is always the server's current date;
// whatever the client sent is discarded.
func (s *reviewService) Create(ctx context.Context, review domain.Review) (*domain.Review, error) {
	review.ID = uuid.NewString()
	review.CreateDate = domain.Today()

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.teacherRepository.Exists(ctx, review.TeacherID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NewEntityNotFoundError("Teacher", review.TeacherID)
		}
		return s.reviewRepository.Create(ctx, &review)
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *reviewService) Delete(ctx context.Context, id string) (*domain.Review, error) {
	var review *domain.Review

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		review, err = s.reviewRepository.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewEntityNotFoundError("Review", id)
			}
			return err
		}
		return s.reviewRepository.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}
