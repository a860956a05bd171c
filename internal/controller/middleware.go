package controller

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogging логирует каждый апдейт с собственным request id.
func RequestLogging(logger *zap.Logger) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			start := time.Now()
			rid := uuid.NewString()

			var userID, chatID int64
			if update.Message != nil {
				userID = update.Message.From.ID
				chatID = update.Message.Chat.ID
			}

			logger.Info("Update received",
				zap.String("request_id", rid),
				zap.Int64("update_id", update.ID),
				zap.Int64("telegram_id", userID),
				zap.Int64("chat_id", chatID))

			next(ctx, b, update)

			logger.Debug("Update handled",
				zap.String("request_id", rid),
				zap.Int64("update_id", update.ID),
				zap.Duration("took", time.Since(start)))
		}
	}
}
