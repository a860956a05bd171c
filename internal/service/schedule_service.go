package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mkravets/music_school_bot/internal/model"
	"github.com/mkravets/music_school_bot/internal/repository"
)

type ScheduleService struct {
	teacherRepo  *repository.TeacherRepository
	scheduleRepo *repository.ScheduleRepository
	logger       *zap.Logger
}

func NewScheduleService(
	teacherRepo *repository.TeacherRepository,
	scheduleRepo *repository.ScheduleRepository,
	logger *zap.Logger,
) *ScheduleService {
	return &ScheduleService{
		teacherRepo:  teacherRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// AddLesson записывает урок. Дата и кабинет сохраняются как есть,
// проверка преподавателя происходит здесь, на финальном шаге диалога.
func (s *ScheduleService) AddLesson(ctx context.Context, userID int64, date, room string) error {
	teacher, err := s.teacherRepo.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get teacher: %w", err)
	}
	if teacher == nil {
		return ErrNotTeacher
	}

	entry := &model.ScheduleEntry{
		Date:      date,
		Room:      room,
		TeacherID: teacher.ID,
	}

	if err := s.scheduleRepo.Create(ctx, entry); err != nil {
		return err
	}

	s.logger.Info("Lesson added",
		zap.Int64("user_id", userID),
		zap.Int64("teacher_id", teacher.ID),
		zap.Int64("schedule_id", entry.ID),
		zap.String("date", date),
		zap.String("room", room),
	)

	return nil
}

// LessonsByTeacher получает все уроки преподавателя
func (s *ScheduleService) LessonsByTeacher(ctx context.Context, userID int64) ([]*model.ScheduleEntry, error) {
	teacher, err := s.teacherRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get teacher: %w", err)
	}
	if teacher == nil {
		return nil, ErrNotTeacher
	}

	return s.scheduleRepo.ListByTeacherID(ctx, teacher.ID)
}

// LessonsForDate получает уроки на дату для ежедневной рассылки
func (s *ScheduleService) LessonsForDate(ctx context.Context, date string) ([]*model.DailyLesson, error) {
	return s.scheduleRepo.ListForDate(ctx, date)
}
