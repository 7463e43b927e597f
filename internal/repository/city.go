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

type cityRepository struct {
	db *sqlx.DB
}

func newCityRepository(db *sqlx.DB) *cityRepository {
	return &cityRepository{
		db: db,
	}
}

func (r *cityRepository) ext(ctx context.Context) sqlx.ExtContext {
	return executor(ctx, r.db)
}

func (r *cityRepository) GetByID(ctx context.Context, id string) (*domain.City, error) {
	const query = `
	SELECT id, name FROM city WHERE id = ?;
	`
	var city domain.City
	if err := sqlx.GetContext(ctx, r.ext(ctx), &city, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from city by id failed: %w", err)
	}
	return &city, nil
}

func (r *cityRepository) GetAll(ctx context.Context) ([]domain.City, error) {
	const query = `
	SELECT id, name FROM city ORDER BY name ASC;
	`
	cities := make([]domain.City, 0)
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &cities, query); err != nil {
		return nil, fmt.Errorf("select all cities failed: %w", err)
	}
	return cities, nil
}

func (r *cityRepository) Exists(ctx context.Context, id string) (bool, error) {
	const query = `
	SELECT EXISTS(SELECT 1 FROM city WHERE id = ?);
	`
	var exists bool
	if err := sqlx.GetContext(ctx, r.ext(ctx), &exists, query, id); err != nil {
		return false, fmt.Errorf("city exists check failed: %w", err)
	}
	return exists, nil
}

func (r *cityRepository) ExistsWithName(ctx context.Context, name string) (bool, error) {
	const query = `
	SELECT EXISTS(SELECT 1 FROM city WHERE name = ?);
	`
	var exists bool
	if err := sqlx.GetContext(ctx, r.ext(ctx), &exists, query, name); err != nil {
		return false, fmt.Errorf("city name exists check failed: %w", err)
	}
	return exists, nil
}

func (r *cityRepository) Create(ctx context.Context, city *domain.City) error {
	const query = `
	INSERT INTO city (id, name) VALUES (?, ?);
	`
	if _, err := r.ext(ctx).ExecContext(ctx, query, city.ID, city.Name); err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("insert city failed: %w", err)
	}
	return nil
}

func (r *cityRepository) Update(ctx context.Context, city *domain.City) error {
	const query = `
	UPDATE city SET name = ? WHERE id = ?;
	`
	result, err := r.ext(ctx).ExecContext(ctx, query, city.Name, city.ID)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("update city failed: %w", err)
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

func (r *cityRepository) Delete(ctx context.Context, id string) error {
	const query = `
	DELETE FROM city WHERE id = ?;
	`
	result, err := r.ext(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete city failed: %w", err)
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
