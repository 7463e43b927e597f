package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/teacher-reviews/backend/internal/config"
	"github.com/teacher-reviews/backend/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetTeacherReviews(t *testing.T) {
	router, mocks := newTestRouter(t, &config.Config{})
	mocks.teachers.On("GetByID", mock.Anything, "t1").
		Return(&domain.Teacher{ID: "t1", Name: "Marie", Surname: "Curie", UniversityID: "u1"}, nil)
	mocks.reviews.On("GetAllByTeacherID", mock.Anything, "t1").
		Return([]domain.Review{{ID: "r1", Rate: 5, TeacherID: "t1", CreateDate: domain.Today()}}, nil)

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/Teacher/getreviews?id=t1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var reviews []domain.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reviews))
	require.Len(t, reviews, 1)
	require.Equal(t, "r1", reviews[0].ID)
}

func TestGetTeacherReviews_TeacherNotFound(t *testing.T) {
	router, mocks := newTestRouter(t, &config.Config{})
	mocks.teachers.On("GetByID", mock.Anything, "bogus").Return(nil, domain.ErrNotFound)

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/Teacher/getreviews?id=bogus", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"statusCode":400,"description":["Teacher with id bogus not found"]}`, rec.Body.String())

	mocks.reviews.AssertNotCalled(t, "GetAllByTeacherID", mock.Anything, mock.Anything)
}
