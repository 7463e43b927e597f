package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/teacher-reviews/backend/internal/domain"
)

type reviewRepository struct {
	db *sqlx.DB
}

func newReviewRepository(db *sqlx.DB) *reviewRepository {
	return &reviewRepository{
		db: db,
	}
}

func (r *reviewRepository) ext(ctx context.Context) sqlx.ExtContext {
	return executor(ctx, r.db)
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	const query = `
	SELECT id, rate, text, create_date, teacher_id FROM review WHERE id = ?;
	`
	var review domain.Review
	if err := sqlx.GetContext(ctx, r.ext(ctx), &review, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from review by id failed: %w", err)
	}
	return &review, nil
}

func (r *reviewRepository) GetAll(ctx context.Context) ([]domain.Review, error) {
	const query = `
	SELECT id, rate, text, create_date, teacher_id FROM review ORDER BY create_date DESC;
	`
	reviews := make([]domain.Review, 0)
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &reviews, query); err != nil {
		return nil, fmt.Errorf("select all reviews failed: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) GetAllByTeacherID(ctx context.Context, teacherID string) ([]domain.Review, error) {
	const query = `
	SELECT id, rate, text, create_date, teacher_id FROM review WHERE teacher_id = ? ORDER BY create_date DESC;
	`
	reviews := make([]domain.Review, 0)
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &reviews, query, teacherID); err != nil {
		return nil, fmt.Errorf("select reviews by teacher id failed: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	const query = `
	INSERT INTO review (id, rate, text, create_date, teacher_id) VALUES (?, ?, ?, ?, ?);
	`
	_, err := r.ext(ctx).ExecContext(ctx, query,
		review.ID,
		review.Rate,
		review.Text,
		review.CreateDate,
		review.TeacherID,
	)
	if err != nil {
		return fmt.Errorf("insert review failed: %w", err)
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	const query = `
	DELETE FROM review WHERE id = ?;
	`
	result, err := r.ext(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete review failed: %w", err)
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
