package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/teacher-reviews/backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return sqlx.NewDb(db, "mysql"), mock
}

func TestCityRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newCityRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name"}).AddRow("c1", "Paris")
	mock.ExpectQuery("SELECT id, name FROM city WHERE id").WithArgs("c1").WillReturnRows(rows)

	city, err := repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	require.Equal(t, &domain.City{ID: "c1", Name: "Paris"}, city)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCityRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newCityRepository(db)

	mock.ExpectQuery("SELECT id, name FROM city WHERE id").WithArgs("bogus").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "bogus")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCityRepository_ExistsWithName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newCityRepository(db)

	rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)
	mock.ExpectQuery("SELECT EXISTS").WithArgs("Paris").WillReturnRows(rows)

	exists, err := repo.ExistsWithName(context.Background(), "Paris")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestCityRepository_Create_DuplicateEntry(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newCityRepository(db)

	mock.ExpectExec("INSERT INTO city").
		WithArgs("c1", "Paris").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	err := repo.Create(context.Background(), &domain.City{ID: "c1", Name: "Paris"})
	require.ErrorIs(t, err, domain.ErrDuplicateEntry)
}

func TestCityRepository_Update_NoRowsAffected(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newCityRepository(db)

	mock.ExpectExec("UPDATE city SET name").
		WithArgs("Lyon", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.City{ID: "missing", Name: "Lyon"})
	require.ErrorIs(t, err, domain.ErrNoRowsAffected)
}

func TestCityRepository_Delete_NoRowsAffected(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newCityRepository(db)

	mock.ExpectExec("DELETE FROM city WHERE id").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNoRowsAffected)
}

func TestUniversityRepository_ExistsWithNameInCity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newUniversityRepository(db)

	rows := sqlmock.NewRows([]string{"exists"}).AddRow(false)
	mock.ExpectQuery("SELECT EXISTS").WithArgs("Sorbonne", "c1", "u1").WillReturnRows(rows)

	exists, err := repo.ExistsWithNameInCity(context.Background(), "Sorbonne", "c1", "u1")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminUserRepository_Create_SetsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newAdminUserRepository(db)

	mock.ExpectExec("INSERT INTO admin_user").
		WithArgs("root", "hashed").
		WillReturnResult(sqlmock.NewResult(42, 1))

	user := &domain.AdminUser{Username: "root", Password: "hashed"}
	require.NoError(t, repo.Create(context.Background(), user))
	require.Equal(t, int64(42), user.ID)
}
