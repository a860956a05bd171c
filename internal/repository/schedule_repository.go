package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkravets/music_school_bot/internal/model"
	"github.com/mkravets/music_school_bot/internal/repository/base"
)

type ScheduleRepository struct {
	*base.Repository
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{Repository: base.NewRepository(pool)}
}

// Create добавляет урок в расписание. Конфликт по дате и кабинету
// не проверяется: двойное бронирование разрешено.
func (r *ScheduleRepository) Create(ctx context.Context, entry *model.ScheduleEntry) error {
	query := `
		INSERT INTO schedule (date, room, teacher_id)
		VALUES ($1, $2, $3)
		RETURNING schedule_id, created_at
	`

	err := r.QueryRow(ctx, query, entry.Date, entry.Room, entry.TeacherID).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("create schedule entry: %w", err)
	}

	return nil
}

// ListByTeacherID получает все уроки преподавателя
func (r *ScheduleRepository) ListByTeacherID(ctx context.Context, teacherID int64) ([]*model.ScheduleEntry, error) {
	query := `
		SELECT schedule_id, date, room, teacher_id, created_at
		FROM schedule
		WHERE teacher_id = $1
		ORDER BY date, schedule_id
	`

	rows, err := r.Query(ctx, query, teacherID)
	if err != nil {
		return nil, fmt.Errorf("list schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []*model.ScheduleEntry
	for rows.Next() {
		var entry model.ScheduleEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Date,
			&entry.Room,
			&entry.TeacherID,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan schedule entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule entries: %w", err)
	}

	return entries, nil
}

// ListForDate получает уроки на дату вместе с Telegram ID преподавателей
// (для ежедневной рассылки).
func (r *ScheduleRepository) ListForDate(ctx context.Context, date string) ([]*model.DailyLesson, error) {
	query := `
		SELECT t.user_id, s.room
		FROM schedule s
		JOIN teachers t ON t.teacher_id = s.teacher_id
		WHERE s.date = $1
		ORDER BY t.user_id, s.schedule_id
	`

	rows, err := r.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list lessons for date: %w", err)
	}
	defer rows.Close()

	var lessons []*model.DailyLesson
	for rows.Next() {
		var lesson model.DailyLesson
		if err := rows.Scan(&lesson.TeacherUserID, &lesson.Room); err != nil {
			return nil, fmt.Errorf("scan daily lesson: %w", err)
		}
		lessons = append(lessons, &lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily lessons: %w", err)
	}

	return lessons, nil
}
