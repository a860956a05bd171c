package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkravets/music_school_bot/internal/model"
	"github.com/mkravets/music_school_bot/internal/repository/base"
)

type TeacherRepository struct {
	*base.Repository
}

func NewTeacherRepository(pool *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{Repository: base.NewRepository(pool)}
}

// CreateInTx создаёт запись преподавателя в рамках внешней транзакции
// и возвращает суррогатный teacher_id.
func (r *TeacherRepository) CreateInTx(ctx context.Context, tx pgx.Tx, userID int64) (int64, error) {
	query := `INSERT INTO teachers (user_id) VALUES ($1) RETURNING teacher_id`

	var teacherID int64
	if err := tx.QueryRow(ctx, query, userID).Scan(&teacherID); err != nil {
		return 0, fmt.Errorf("create teacher: %w", err)
	}

	return teacherID, nil
}

// GetByUserID резолвит преподавателя по Telegram ID пользователя
func (r *TeacherRepository) GetByUserID(ctx context.Context, userID int64) (*model.Teacher, error) {
	query := `
		SELECT teacher_id, user_id, created_at
		FROM teachers
		WHERE user_id = $1
	`

	var teacher model.Teacher
	err := r.QueryRow(ctx, query, userID).Scan(
		&teacher.ID,
		&teacher.UserID,
		&teacher.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil // Не преподаватель
		}
		return nil, fmt.Errorf("get teacher by user id: %w", err)
	}

	return &teacher, nil
}
