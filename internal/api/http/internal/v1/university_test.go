package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/teacher-reviews/backend/internal/config"
	"github.com/teacher-reviews/backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUniversity_RequiresAuth(t *testing.T) {
	router, mocks := newTestRouter(t, &config.Config{})

	rec := doRequest(router, jsonRequest(http.MethodPost, "/api/University/create", gin.H{
		"name":         "Sorbonne",
		"abbreviation": "SU",
		"cityId":       "c1",
	}))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, `Basic realm="admin", charset="UTF-8"`, rec.Header().Get("WWW-Authenticate"))
	require.JSONEq(t, `{"statusCode":401,"description":["invalid credentials"]}`, rec.Body.String())

	mocks.universities.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUniversity_RejectsBadCredentials(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.MainAdminUsername = "root"
	cfg.Auth.MainAdminPassword = "secret"

	router, mocks := newTestRouter(t, cfg)
	mocks.adminUsers.On("GetByUsername", mock.Anything, "root").Return(nil, domain.ErrNotFound)

	req := jsonRequest(http.MethodPost, "/api/University/create", gin.H{
		"name":         "Sorbonne",
		"abbreviation": "SU",
		"cityId":       "c1",
	})
	req.SetBasicAuth("root", "wrong")

	rec := doRequest(router, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	mocks.universities.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUniversity_WithStoredAdmin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	router, mocks := newTestRouter(t, &config.Config{})
	mocks.adminUsers.On("GetByUsername", mock.Anything, "root").
		Return(&domain.AdminUser{ID: 1, Username: "root", Password: string(hashed)}, nil)
	mocks.cities.On("GetByID", mock.Anything, "c1").Return(&domain.City{ID: "c1", Name: "Paris"}, nil)
	mocks.universities.On("ExistsWithNameInCity", mock.Anything, "Sorbonne", "c1", "").Return(false, nil)
	mocks.universities.On("Create", mock.Anything, mock.AnythingOfType("*domain.University")).Return(nil)

	req := jsonRequest(http.MethodPost, "/api/University/create", gin.H{
		"name":         "Sorbonne",
		"abbreviation": "SU",
		"cityId":       "c1",
	})
	req.SetBasicAuth("root", "secret")

	rec := doRequest(router, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var university domain.University
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &university))
	require.NotEmpty(t, university.ID)
	require.Equal(t, "Sorbonne", university.Name)
	require.Equal(t, "c1", university.CityID)

	mocks.universities.AssertExpectations(t)
}

func TestCreateUniversity_CityNotFound(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.MainAdminUsername = "root"
	cfg.Auth.MainAdminPassword = "secret"

	router, mocks := newTestRouter(t, cfg)
	mocks.adminUsers.On("GetByUsername", mock.Anything, "root").Return(nil, domain.ErrNotFound)
	mocks.cities.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	req := jsonRequest(http.MethodPost, "/api/University/create", gin.H{
		"name":         "Sorbonne",
		"abbreviation": "SU",
		"cityId":       "missing",
	})
	req.SetBasicAuth("root", "secret")

	rec := doRequest(router, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"statusCode":400,"description":["City with id missing not found"]}`, rec.Body.String())
}

func TestGetUniversityTeachers(t *testing.T) {
	router, mocks := newTestRouter(t, &config.Config{})
	mocks.universities.On("GetByID", mock.Anything, "u1").
		Return(&domain.University{ID: "u1", Name: "Sorbonne", Abbreviation: "SU", CityID: "c1"}, nil)
	mocks.teachers.On("GetAllByUniversityID", mock.Anything, "u1").
		Return([]domain.Teacher{{ID: "t1", Name: "Marie", Surname: "Curie", UniversityID: "u1"}}, nil)

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/University/getteachers?id=u1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var teachers []domain.Teacher
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &teachers))
	require.Len(t, teachers, 1)
	require.Equal(t, "Curie", teachers[0].Surname)
}
