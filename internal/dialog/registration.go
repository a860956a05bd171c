package dialog

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkravets/music_school_bot/internal/service"
)

// Registration — диалог регистрации преподавателя по секретному паролю.
type Registration struct {
	teachers TeacherDirectory
	secret   string
}

func NewRegistration(teachers TeacherDirectory, secret string) *Registration {
	return &Registration{teachers: teachers, secret: secret}
}

// Start обрабатывает вход в диалог (/start). Зарегистрированному
// преподавателю сразу показывается основное меню.
func (d *Registration) Start(ctx context.Context, userID int64) (Effect, error) {
	isTeacher, err := d.teachers.IsTeacher(ctx, userID)
	if err != nil {
		return Effect{}, fmt.Errorf("check teacher: %w", err)
	}

	if isTeacher {
		return Effect{
			Text:     "Вітаю! Ви зареєстровані як викладач. Виберіть опцію:",
			Keyboard: KeyboardMain,
		}, nil
	}

	return Effect{
		Text:     "Вітаю! Введіть спеціальний пароль для реєстрації викладача:",
		Keyboard: KeyboardCancel,
		Next:     StateRegisterPassword,
	}, nil
}

// Step выполняет переход автомата регистрации.
func (d *Registration) Step(ctx context.Context, userID int64, state State, text string) (Effect, error) {
	switch state {
	case StateRegisterPassword:
		// Побайтовое сравнение с паролем из конфигурации.
		// Неверный пароль завершает диалог без повторного запроса.
		if text != d.secret {
			return Effect{
				Text:     "Невірний пароль. Спробуйте знову або скасуйте операцію.",
				Keyboard: KeyboardMain,
			}, nil
		}
		return Effect{
			Text:     "Пароль вірний. Введіть своє ПІБ:",
			Keyboard: KeyboardCancel,
			Next:     StateRegisterFullName,
		}, nil

	case StateRegisterFullName:
		err := d.teachers.Register(ctx, userID, text)
		if errors.Is(err, service.ErrAlreadyRegistered) {
			return Effect{
				Text:     "Ви вже зареєстровані як викладач.",
				Keyboard: KeyboardMain,
			}, nil
		}
		if err != nil {
			return Effect{}, fmt.Errorf("register teacher: %w", err)
		}
		return Effect{
			Text:     "Реєстрація завершена!",
			Keyboard: KeyboardMain,
		}, nil
	}

	return Effect{}, fmt.Errorf("registration: unexpected state %q", state)
}
