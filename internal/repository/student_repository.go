package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkravets/music_school_bot/internal/model"
	"github.com/mkravets/music_school_bot/internal/repository/base"
)

type StudentRepository struct {
	*base.Repository
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{Repository: base.NewRepository(pool)}
}

// ListByTeacherID получает учеников преподавателя в порядке добавления
func (r *StudentRepository) ListByTeacherID(ctx context.Context, teacherID int64) ([]*model.Student, error) {
	query := `
		SELECT student_id, fullname, teacher_id, created_at
		FROM students
		WHERE teacher_id = $1
		ORDER BY student_id
	`

	rows, err := r.Query(ctx, query, teacherID)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var students []*model.Student
	for rows.Next() {
		var student model.Student
		err := rows.Scan(
			&student.ID,
			&student.FullName,
			&student.TeacherID,
			&student.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}

	return students, nil
}
