package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/mkravets/music_school_bot/internal/model"
	"github.com/mkravets/music_school_bot/internal/repository"
)

type TeacherService struct {
	pool        *pgxpool.Pool
	userRepo    *repository.UserRepository
	teacherRepo *repository.TeacherRepository
	studentRepo *repository.StudentRepository
	logger      *zap.Logger
}

func NewTeacherService(
	pool *pgxpool.Pool,
	userRepo *repository.UserRepository,
	teacherRepo *repository.TeacherRepository,
	studentRepo *repository.StudentRepository,
	logger *zap.Logger,
) *TeacherService {
	return &TeacherService{
		pool:        pool,
		userRepo:    userRepo,
		teacherRepo: teacherRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Register создаёт пользователя с флагом преподавателя и запись teachers
// одной транзакцией: либо обе строки, либо ни одной.
func (s *TeacherService) Register(ctx context.Context, userID int64, fullName string) error {
	existing, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return ErrAlreadyRegistered
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	user := &model.User{
		ID:        userID,
		FullName:  fullName,
		IsTeacher: true,
	}

	if err := s.userRepo.CreateInTx(ctx, tx, user); err != nil {
		// Гонка двух /start одного пользователя упирается в PK users
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyRegistered
		}
		return err
	}

	teacherID, err := s.teacherRepo.CreateInTx(ctx, tx, userID)
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit registration: %w", err)
	}

	s.logger.Info("Teacher registered",
		zap.Int64("user_id", userID),
		zap.Int64("teacher_id", teacherID),
		zap.String("fullname", fullName),
	)

	return nil
}

// IsTeacher проверяет зарегистрирован ли пользователь как преподаватель
func (s *TeacherService) IsTeacher(ctx context.Context, userID int64) (bool, error) {
	return s.userRepo.IsTeacher(ctx, userID)
}

// Profile собирает имя преподавателя и список его учеников.
// Возвращает nil для незарегистрированных пользователей.
func (s *TeacherService) Profile(ctx context.Context, userID int64) (*model.TeacherProfile, error) {
	teacher, err := s.teacherRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get teacher: %w", err)
	}
	if teacher == nil {
		return nil, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		// Осиротевшая строка teachers — считаем профиль недоступным
		s.logger.Warn("Teacher without user row", zap.Int64("user_id", userID))
		return nil, nil
	}

	students, err := s.studentRepo.ListByTeacherID(ctx, teacher.ID)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	profile := &model.TeacherProfile{TeacherName: user.FullName}
	for _, student := range students {
		profile.Students = append(profile.Students, student.FullName)
	}

	return profile, nil
}
