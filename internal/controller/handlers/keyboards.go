package handlers

import (
	"github.com/go-telegram/bot/models"

	"github.com/mkravets/music_school_bot/internal/dialog"
	"github.com/mkravets/music_school_bot/internal/model"
)

// replyMarkup подбирает reply-клавиатуру под эффект диалога
func replyMarkup(k dialog.Keyboard) models.ReplyMarkup {
	switch k {
	case dialog.KeyboardMain:
		return mainMenuKeyboard()
	case dialog.KeyboardCancel:
		return cancelKeyboard()
	case dialog.KeyboardRooms:
		return roomsKeyboard()
	}
	return nil
}

// mainMenuKeyboard — основное меню преподавателя
func mainMenuKeyboard() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: dialog.ButtonViewProfile}, {Text: dialog.ButtonAddLesson}},
			{{Text: dialog.ButtonMySchedule}},
			{{Text: dialog.ButtonCancel}},
		},
		ResizeKeyboard: true,
	}
}

func cancelKeyboard() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: dialog.ButtonCancel}},
		},
		ResizeKeyboard: true,
	}
}

// roomsKeyboard — фиксированный список кабинетов, по одному в ряд
func roomsKeyboard() *models.ReplyKeyboardMarkup {
	rows := make([][]models.KeyboardButton, 0, len(model.Classrooms)+1)
	for _, room := range model.Classrooms {
		rows = append(rows, []models.KeyboardButton{{Text: room}})
	}
	rows = append(rows, []models.KeyboardButton{{Text: dialog.ButtonCancel}})

	return &models.ReplyKeyboardMarkup{
		Keyboard:       rows,
		ResizeKeyboard: true,
	}
}
