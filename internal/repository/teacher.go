package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/teacher-reviews/backend/internal/domain"
)

type teacherRepository struct {
	db *sqlx.DB
}

func newTeacherRepository(db *sqlx.DB) *teacherRepository {
	return &teacherRepository{
		db: db,
	}
}

func (r *teacherRepository) ext(ctx context.Context) sqlx.ExtContext {
	return executor(ctx, r.db)
}

func (r *teacherRepository) GetByID(ctx context.Context, id string) (*domain.Teacher, error) {
	const query = `
	SELECT id, name, surname, patronymic, university_id FROM teacher WHERE id = ?;
	`
	var teacher domain.Teacher
	if err := sqlx.GetContext(ctx, r.ext(ctx), &teacher, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from teacher by id failed: %w", err)
	}
	return &teacher, nil
}

func (r *teacherRepository) GetAll(ctx context.Context) ([]domain.Teacher, error) {
	const query = `
	SELECT id, name, surname, patronymic, university_id FROM teacher ORDER BY surname ASC, name ASC;
	`
	teachers := make([]domain.Teacher, 0)
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &teachers, query); err != nil {
		return nil, fmt.Errorf("select all teachers failed: %w", err)
	}
	return teachers, nil
}

func (r *teacherRepository) GetAllByUniversityID(ctx context.Context, universityID string) ([]domain.Teacher, error) {
	const query = `
	SELECT id, name, surname, patronymic, university_id FROM teacher WHERE university_id = ? ORDER BY surname ASC, name ASC;
	`
	teachers := make([]domain.Teacher, 0)
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &teachers, query, universityID); err != nil {
		return nil, fmt.Errorf("select teachers by university id failed: %w", err)
	}
	return teachers, nil
}

func (r *teacherRepository) Exists(ctx context.Context, id string) (bool, error) {
	const query = `
	SELECT EXISTS(SELECT 1 FROM teacher WHERE id = ?);
	`
	var exists bool
	if err := sqlx.GetContext(ctx, r.ext(ctx), &exists, query, id); err != nil {
		return false, fmt.Errorf("teacher exists check failed: %w", err)
	}
	return exists, nil
}

func (r *teacherRepository) Create(ctx context.Context, teacher *domain.Teacher) error {
	const query = `
	INSERT INTO teacher (id, name, surname, patronymic, university_id) VALUES (?, ?, ?, ?, ?);
	`
	_, err := r.ext(ctx).ExecContext(ctx, query,
		teacher.ID,
		teacher.Name,
		teacher.Surname,
		teacher.Patronymic,
		teacher.UniversityID,
	)
	if err != nil {
		return fmt.Errorf("insert teacher failed: %w", err)
	}
	return nil
}

func (r *teacherRepository) Update(ctx context.Context, teacher *domain.Teacher) error {
	const query = `
	UPDATE teacher SET name = ?, surname = ?, patronymic = ?, university_id = ? WHERE id = ?;
	`
	result, err := r.ext(ctx).ExecContext(ctx, query,
		teacher.Name,
		teacher.Surname,
		teacher.Patronymic,
		teacher.UniversityID,
		teacher.ID,
	)
	if err != nil {
		return fmt.Errorf("update teacher failed: %w", err)
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

func (r *teacherRepository) Delete(ctx context.Context, id string) error {
	const query = `
	DELETE FROM teacher WHERE id = ?;
	`
	result, err := r.ext(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete teacher failed: %w", err)
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
