package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/mkravets/music_school_bot/internal/app"
	"github.com/mkravets/music_school_bot/internal/config"
	"github.com/mkravets/music_school_bot/internal/controller"
	"github.com/mkravets/music_school_bot/internal/repository"
	"github.com/mkravets/music_school_bot/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Database is unreachable", zap.Error(err))
	}

	// Схема создаётся идемпотентно при каждом старте
	migrator, err := app.NewMigrator(pool)
	if err != nil {
		logger.Fatal("Failed to init migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	userRepo := repository.NewUserRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	scheduleRepo := repository.NewScheduleRepository(pool)

	teacherService := service.NewTeacherService(pool, userRepo, teacherRepo, studentRepo, logger)
	scheduleService := service.NewScheduleService(teacherRepo, scheduleRepo, logger)

	b, err := bot.New(cfg.TelegramToken, bot.WithMiddlewares(controller.RequestLogging(logger)))
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(b, teacherService, scheduleService, cfg.TeacherSecret, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	digest := app.NewDigest(scheduleService, b, logger)
	digest.Start(ctx)
	defer digest.Stop()

	logger.Sugar().Infow("Starting music school bot",
		"environment", cfg.Environment,
		"token_length", len(cfg.TelegramToken))

	if err := botController.Start(ctx); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}
}
