package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/mkravets/music_school_bot/internal/controller/handlers"
	"github.com/mkravets/music_school_bot/internal/controller/state"
	"github.com/mkravets/music_school_bot/internal/dialog"
	"github.com/mkravets/music_school_bot/internal/render"
	"github.com/mkravets/music_school_bot/internal/service"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	logger   *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	teacherService *service.TeacherService,
	scheduleService *service.ScheduleService,
	teacherSecret string,
	logger *zap.Logger,
) *BotController {
	// Хранилище сессий принадлежит диспетчеру
	sessions := state.NewManager()

	dispatcher := dialog.NewDispatcher(
		sessions,
		dialog.NewRegistration(teacherService, teacherSecret),
		dialog.NewBooking(scheduleService),
		teacherService,
		scheduleService,
		render.WeekImage,
		logger,
	)

	return &BotController{
		bot:      botInstance,
		handlers: handlers.NewHandlers(dispatcher, logger),
		logger:   logger,
	}
}

// RegisterHandlers регистрирует обработчики сообщений
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// Весь текст идёт через единый диспетчер: сначала активный диалог
	// пользователя, затем таблица триггеров
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleMessage)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🎵 Реєстрація викладача / головне меню"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
