package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkravets/music_school_bot/internal/model"
	"github.com/mkravets/music_school_bot/internal/repository/base"
)

type UserRepository struct {
	*base.Repository
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{Repository: base.NewRepository(pool)}
}

// CreateInTx вставляет пользователя в рамках внешней транзакции.
// Пара вставок users+teachers должна быть атомарной, поэтому tx приходит снаружи.
func (r *UserRepository) CreateInTx(ctx context.Context, tx pgx.Tx, user *model.User) error {
	query := `
		INSERT INTO users (user_id, fullname, is_teacher)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err := tx.QueryRow(ctx, query, user.ID, user.FullName, user.IsTeacher).Scan(&user.CreatedAt)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByID получает пользователя по Telegram ID
func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*model.User, error) {
	query := `
		SELECT user_id, fullname, is_teacher, created_at
		FROM users
		WHERE user_id = $1
	`

	var user model.User
	err := r.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.FullName,
		&user.IsTeacher,
		&user.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil // Пользователь не найден
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return &user, nil
}

// IsTeacher проверяет поднят ли у пользователя флаг преподавателя
func (r *UserRepository) IsTeacher(ctx context.Context, userID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1 AND is_teacher = TRUE)`

	var isTeacher bool
	if err := r.QueryRow(ctx, query, userID).Scan(&isTeacher); err != nil {
		return false, fmt.Errorf("check teacher flag: %w", err)
	}

	return isTeacher, nil
}
