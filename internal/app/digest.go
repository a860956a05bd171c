package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"github.com/mkravets/music_school_bot/internal/service"
)

// Digest раз в сутки напоминает преподавателям про сегодняшние уроки.
type Digest struct {
	schedule *service.ScheduleService
	bot      *bot.Bot
	logger   *zap.Logger
	stopChan chan struct{}
}

// NewDigest создаёт рассылку напоминаний
func NewDigest(schedule *service.ScheduleService, b *bot.Bot, logger *zap.Logger) *Digest {
	return &Digest{
		schedule: schedule,
		bot:      b,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновую рассылку
func (d *Digest) Start(ctx context.Context) {
	d.logger.Info("Starting daily digest")
	go d.run(ctx)
}

// Stop останавливает рассылку
func (d *Digest) Stop() {
	close(d.stopChan)
}

func (d *Digest) run(ctx context.Context) {
	// Первый запуск сразу при старте
	d.sendToday(ctx)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.sendToday(ctx)
		case <-d.stopChan:
			d.logger.Info("Daily digest stopped")
			return
		case <-ctx.Done():
			d.logger.Info("Daily digest cancelled")
			return
		}
	}
}

// sendToday собирает уроки на сегодня и шлёт по сообщению каждому преподавателю
func (d *Digest) sendToday(ctx context.Context) {
	date := time.Now().Format("2006-01-02")

	lessons, err := d.schedule.LessonsForDate(ctx, date)
	if err != nil {
		d.logger.Error("Failed to load daily lessons", zap.Error(err))
		return
	}
	if len(lessons) == 0 {
		return
	}

	// Группируем кабинеты по преподавателю, сохраняя порядок выборки
	rooms := make(map[int64][]string)
	var order []int64
	for _, lesson := range lessons {
		if _, ok := rooms[lesson.TeacherUserID]; !ok {
			order = append(order, lesson.TeacherUserID)
		}
		rooms[lesson.TeacherUserID] = append(rooms[lesson.TeacherUserID], lesson.Room)
	}

	for _, userID := range order {
		text := fmt.Sprintf(
			"Нагадування: сьогодні (%s) у вас уроки у кабінетах: %s",
			date,
			strings.Join(rooms[userID], ", "),
		)

		_, err := d.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: userID,
			Text:   text,
		})
		if err != nil {
			d.logger.Error("Failed to send daily digest",
				zap.Int64("user_id", userID),
				zap.Error(err))
		}
	}

	d.logger.Info("Daily digest sent",
		zap.String("date", date),
		zap.Int("teachers", len(order)))
}
