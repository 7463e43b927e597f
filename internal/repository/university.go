package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/teacher-reviews/backend/internal/db"
	"github.com/teacher-reviews/backend/internal/domain"
)

type universityRepository struct {
	db *sqlx.DB
}

func newUniversityRepository(db *sqlx.DB) *universityRepository {
	return &universityRepository{
		db: db,
	}
}

func (r *universityRepository) ext(ctx context.Context) sqlx.ExtContext {
	return executor(ctx, r.db)
}

func (r *universityRepository) GetByID(ctx context.Context, id string) (*domain.University, error) {
	const query = `
	SELECT id, name, abbreviation, city_id FROM university WHERE id = ?;
	`
	var university domain.University
	if err := sqlx.GetContext(ctx, r.ext(ctx), &university, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from university by id failed: %w", err)
	}
	return &university, nil
}

func (r *universityRepository) GetAll(ctx context.Context) ([]domain.University, error) {
	const query = `
	SELECT id, name, abbreviation, city_id FROM university ORDER BY name ASC;
	`
	universities := make([]domain.University, 0)
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &universities, query); err != nil {
		return nil, fmt.Errorf("select all universities failed: %w", err)
	}
	return universities, nil
}

func (r *universityRepository) GetAllByCityID(ctx context.Context, cityID string) ([]domain.University, error) {
	const query = `
	SELECT id, name, abbreviation, city_id FROM university WHERE city_id = ? ORDER BY name ASC;
	`
	universities := make([]domain.University, 0)
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &universities, query, cityID); err != nil {
		return nil, fmt.Errorf("select universities by city id failed: %w", err)
	}
	return universities, nil
}

// ExistsWithNameInCity reports whether a university other than excludeID
// already holds name within the city. Pass an empty excludeID on create.
func (r *universityRepository) ExistsWithNameInCity(ctx context.Context, name, cityID, excludeID string) (bool, error) {
	const query = `
	SELECT EXISTS(SELECT 1 FROM university WHERE name = ? AND city_id = ? AND id != ?);
	`
	var exists bool
	if err := sqlx.GetContext(ctx, r.ext(ctx), &exists, query, name, cityID, excludeID); err != nil {
		return false, fmt.Errorf("university name exists check failed: %w", err)
	}
	return exists, nil
}

func (r *universityRepository) Create(ctx context.Context, university *domain.University) error {
	const query = `
	INSERT INTO university (id, name, abbreviation, city_id) VALUES (?, ?, ?, ?);
	`
	_, err := r.ext(ctx).ExecContext(ctx, query,
		university.ID,
		university.Name,
		university.Abbreviation,
		university.CityID,
	)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("insert university failed: %w", err)
	}
	return nil
}

func (r *universityRepository) Update(ctx context.Context, university *domain.University) error {
	const query = `
	UPDATE university SET name = ?, abbreviation = ?, city_id = ? WHERE id = ?;
	`
	result, err := r.ext(ctx).ExecContext(ctx, query,
		university.Name,
		university.Abbreviation,
		university.CityID,
		university.ID,
	)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("update university failed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNoRowsAffected
	}
	return nil
}

func (r *universityRepository) Delete(ctx context.Context, id string) error {
	const query = `
	DELETE FROM university WHERE id = ?;
	`
	result, err := r.ext(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete university failed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNoRowsAffected
	}
	return nil
}
