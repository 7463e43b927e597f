package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/teacher-reviews/backend/internal/domain"
	mock_repository "github.com/teacher-reviews/backend/internal/repository/mocks"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestReviewService(reviewRepo *mock_repository.Reviews, teacherRepo *mock_repository.Teachers) *reviewService {
	return newReviewService(reviewRepo, teacherRepo, mock_repository.Transactor{})
}

func TestReviewService_Create_SetsServerDate(t *testing.T) {
	teacherRepo := new(mock_repository.Teachers)
	teacherRepo.On("Exists", mock.Anything, "t1").Return(true, nil)

	var created *domain.Review
	reviewRepo := new(mock_repository.Reviews)
	reviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Review")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.Review)
		}).
		Return(nil)

	s := newTestReviewService(reviewRepo, teacherRepo)

	// Client-supplied id and date must both be discarded.
	clientDate := domain.DateOf(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
	review, err := s.Create(context.Background(), domain.Review{
		ID:         "client-id",
		Rate:       5,
		Text:       "great lectures",
		CreateDate: clientDate,
		TeacherID:  "t1",
	})
	require.NoError(t, err)
	require.NotEqual(t, "client-id", review.ID)
	require.Equal(t, domain.Today(), review.CreateDate)
	require.Equal(t, review, created)
}

func TestReviewService_Create_TeacherNotFound(t *testing.T) {
	teacherRepo := new(mock_repository.Teachers)
	teacherRepo.On("Exists", mock.Anything, "missing").Return(false, nil)

	reviewRepo := new(mock_repository.Reviews)

	s := newTestReviewService(reviewRepo, teacherRepo)

	_, err := s.Create(context.Background(), domain.Review{Rate: 3, TeacherID: "missing"})
	requireAPIError(t, err, http.StatusBadRequest, "Teacher with id missing not found")

	reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewService_Delete(t *testing.T) {
	review := &domain.Review{ID: "r1", Rate: 4, TeacherID: "t1", CreateDate: domain.Today()}

	reviewRepo := new(mock_repository.Reviews)
	reviewRepo.On("GetByID", mock.Anything, "r1").Return(review, nil)
	reviewRepo.On("Delete", mock.Anything, "r1").Return(nil)

	s := newTestReviewService(reviewRepo, new(mock_repository.Teachers))

	deleted, err := s.Delete(context.Background(), "r1")
	require.NoError(t, err)
	require.Equal(t, review, deleted)

	reviewRepo.AssertExpectations(t)
}

func TestReviewService_Delete_NotFound(t *testing.T) {
	reviewRepo := new(mock_repository.Reviews)
	reviewRepo.On("GetByID", mock.Anything, "r1").Return(nil, domain.ErrNotFound)

	s := newTestReviewService(reviewRepo, new(mock_repository.Teachers))

	_, err := s.Delete(context.Background(), "r1")
	requireAPIError(t, err, http.StatusBadRequest, "Review with id r1 not found")

	reviewRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
