// Package dialog реализует пошаговые диалоги бота как явные конечные
// автоматы: переход (состояние, ввод) -> (эффект, следующее состояние).
// Пакет не знает о Telegram-транспорте и тестируется на фейковых хранилищах.
package dialog

import (
	"context"

	"github.com/mkravets/music_school_bot/internal/model"
)

// State — состояние активного диалога пользователя.
type State string

const (
	StateNone State = "" // Нет активного диалога

	// Регистрация преподавателя
	StateRegisterPassword State = "register_password"
	StateRegisterFullName State = "register_fullname"

	// Добавление урока
	StateLessonDate State = "lesson_date"
	StateLessonRoom State = "lesson_room"
)

// Session — накопленные данные активного диалога одного пользователя.
type Session struct {
	State State
	Date  string // черновик даты урока, заполняется на шаге StateLessonDate
}

// Keyboard — какую клавиатуру показать вместе с ответом.
type Keyboard int

const (
	KeyboardNone Keyboard = iota
	KeyboardMain
	KeyboardCancel
	KeyboardRooms
)

// Effect — результат одного шага диалога или команды.
// Пустой Effect означает "молча проигнорировать сообщение".
type Effect struct {
	Text     string
	Photo    []byte // PNG; Text при этом уходит подписью
	Keyboard Keyboard
	Next     State // StateNone — диалог завершён
}

// TeacherDirectory — операции над преподавателями, нужные диалогам.
type TeacherDirectory interface {
	IsTeacher(ctx context.Context, userID int64) (bool, error)
	Register(ctx context.Context, userID int64, fullName string) error
	Profile(ctx context.Context, userID int64) (*model.TeacherProfile, error)
}

// LessonBook — операции над расписанием, нужные диалогам.
type LessonBook interface {
	AddLesson(ctx context.Context, userID int64, date, room string) error
	LessonsByTeacher(ctx context.Context, userID int64) ([]*model.ScheduleEntry, error)
}

// Sessions — хранилище сессий диалогов, ключ — Telegram ID.
type Sessions interface {
	Get(userID int64) (Session, bool)
	Put(userID int64, sess Session)
	Clear(userID int64)
}
