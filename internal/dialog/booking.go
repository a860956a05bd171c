package dialog

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkravets/music_school_bot/internal/service"
)

// Booking — диалог добавления урока: дата, затем кабинет.
// Проверки прав на входе нет, преподаватель резолвится на финальном шаге.
type Booking struct {
	lessons LessonBook
}

func NewBooking(lessons LessonBook) *Booking {
	return &Booking{lessons: lessons}
}

// Start обрабатывает вход в диалог ("Додати урок").
func (d *Booking) Start() Effect {
	return Effect{
		Text:     "Введіть дату для нового уроку (у форматі РРРР-ММ-ДД):",
		Keyboard: KeyboardCancel,
		Next:     StateLessonDate,
	}
}

// Step выполняет переход автомата бронирования. Возвращает обновлённую
// сессию с накопленными полями диалога.
func (d *Booking) Step(ctx context.Context, userID int64, sess Session, text string) (Effect, Session, error) {
	switch sess.State {
	case StateLessonDate:
		// Дата сохраняется как есть, формат не валидируется
		next := Session{State: StateLessonRoom, Date: text}
		return Effect{
			Text:     "Виберіть кабінет:",
			Keyboard: KeyboardRooms,
			Next:     StateLessonRoom,
		}, next, nil

	case StateLessonRoom:
		err := d.lessons.AddLesson(ctx, userID, sess.Date, text)
		if errors.Is(err, service.ErrNotTeacher) {
			return Effect{
				Text:     "Ви не зареєстровані як викладач.",
				Keyboard: KeyboardMain,
			}, Session{}, nil
		}
		if err != nil {
			return Effect{}, Session{}, fmt.Errorf("add lesson: %w", err)
		}
		return Effect{
			Text:     fmt.Sprintf("Урок на дату %s у кабінеті %s успішно додано.", sess.Date, text),
			Keyboard: KeyboardMain,
		}, Session{}, nil
	}

	return Effect{}, Session{}, fmt.Errorf("booking: unexpected state %q", sess.State)
}
