// Package handlers — тонкий транспортный слой: сообщение уходит
// диспетчеру диалогов, его эффект рендерится в ответ Telegram.
package handlers

import (
	"bytes"
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/mkravets/music_school_bot/internal/dialog"
)

type Handlers struct {
	dispatcher *dialog.Dispatcher
	logger     *zap.Logger
}

// NewHandlers создаёт обработчики сообщений
func NewHandlers(dispatcher *dialog.Dispatcher, logger *zap.Logger) *Handlers {
	return &Handlers{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// HandleMessage обрабатывает входящее текстовое сообщение
func (h *Handlers) HandleMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	eff, err := h.dispatcher.Dispatch(ctx, userID, update.Message.Text)
	if err != nil {
		// Отказ хранилища фатален только для этого взаимодействия
		h.logger.Error("Dialog step failed",
			zap.Int64("telegram_id", userID),
			zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Сталася помилка. Спробуйте пізніше.")
		return
	}

	h.send(ctx, b, chatID, eff)
}

// send отправляет эффект диалога: фото с подписью или текст
func (h *Handlers) send(ctx context.Context, b *bot.Bot, chatID int64, eff dialog.Effect) {
	markup := replyMarkup(eff.Keyboard)

	if len(eff.Photo) > 0 {
		_, err := b.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID: chatID,
			Photo: &models.InputFileUpload{
				Filename: "schedule.png",
				Data:     bytes.NewReader(eff.Photo),
			},
			Caption:     eff.Text,
			ReplyMarkup: markup,
		})
		if err != nil {
			h.logger.Error("Failed to send photo",
				zap.Int64("chat_id", chatID),
				zap.Error(err))
		}
		return
	}

	// Пустой эффект — нераспознанное сообщение, ответа нет
	if eff.Text == "" {
		return
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        eff.Text,
		ReplyMarkup: markup,
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}

// sendError отправляет сообщение об ошибке и логирует если не удалось
func (h *Handlers) sendError(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error("Failed to send error message",
			zap.Int64("chat_id", chatID),
			zap.String("text", text),
			zap.Error(err))
	}
}
