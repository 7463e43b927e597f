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

type adminUserRepository struct {
	db *sqlx.DB
}

func newAdminUserRepository(db *sqlx.DB) *adminUserRepository {
	return &adminUserRepository{
		db: db,
	}
}

func (r *adminUserRepository) ext(ctx context.Context) sqlx.ExtContext {
	return executor(ctx, r.db)
}

func (r *adminUserRepository) GetByID(ctx context.Context, id int64) (*domain.AdminUser, error) {
	const query = `
	SELECT id, username, password FROM admin_user WHERE id = ?;
	`
	var user domain.AdminUser
	if err := sqlx.GetContext(ctx, r.ext(ctx), &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from admin_user by id failed: %w", err)
	}
	return &user, nil
}

func (r *adminUserRepository) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	const query = `
	SELECT id, username, password FROM admin_user WHERE username = ?;
	`
	var user domain.AdminUser
	if err := sqlx.GetContext(ctx, r.ext(ctx), &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from admin_user by username failed: %w", err)
	}
	return &user, nil
}

func (r *adminUserRepository) Create(ctx context.Context, user *domain.AdminUser) error {
	const query = `
	INSERT INTO admin_user (username, password) VALUES (?, ?);
	`
	result, err := r.ext(ctx).ExecContext(ctx, query, user.Username, user.Password)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("insert admin_user failed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id failed: %w", err)
	}
	user.ID = id
	return nil
}

func (r *adminUserRepository) Update(ctx context.Context, user *domain.AdminUser) error {
	const query = `
	UPDATE admin_user SET username = ?, password = ? WHERE id = ?;
	`
	result, err := r.ext(ctx).ExecContext(ctx, query, user.Username, user.Password, user.ID)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("update admin_user failed: %w", err)
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

func (r *adminUserRepository) Delete(ctx context.Context, id int64) error {
	const query = `
	DELETE FROM admin_user WHERE id = ?;
	`
	result, err := r.ext(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete admin_user failed: %w", err)
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
