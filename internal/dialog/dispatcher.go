package dialog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mkravets/music_school_bot/internal/model"
	"github.com/mkravets/music_school_bot/internal/service"
)

// WeekRenderer рендерит уроки недели в PNG.
type WeekRenderer func(entries []*model.ScheduleEntry, weekStart time.Time) ([]byte, error)

// Dispatcher маршрутизирует входящее сообщение: сначала активный диалог
// пользователя, затем таблица триггеров, иначе сообщение игнорируется.
// Диспетчер владеет хранилищем сессий.
type Dispatcher struct {
	sessions     Sessions
	registration *Registration
	booking      *Booking
	teachers     TeacherDirectory
	lessons      LessonBook
	renderWeek   WeekRenderer
	now          func() time.Time
	logger       *zap.Logger
}

func NewDispatcher(
	sessions Sessions,
	registration *Registration,
	booking *Booking,
	teachers TeacherDirectory,
	lessons LessonBook,
	renderWeek WeekRenderer,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		sessions:     sessions,
		registration: registration,
		booking:      booking,
		teachers:     teachers,
		lessons:      lessons,
		renderWeek:   renderWeek,
		now:          time.Now,
		logger:       logger,
	}
}

// Dispatch обрабатывает одно входящее сообщение пользователя.
// Ошибка означает отказ хранилища; сессия пользователя при этом сброшена,
// остальные пользователи не затронуты.
func (d *Dispatcher) Dispatch(ctx context.Context, userID int64, text string) (Effect, error) {
	trigger := ParseTrigger(text)

	// Активный диалог имеет приоритет над триггерами: его текущий шаг
	// получает сообщение как ввод. Исключение — отмена.
	if sess, ok := d.sessions.Get(userID); ok && sess.State != StateNone {
		if trigger == TriggerCancel {
			d.sessions.Clear(userID)
			return Effect{Text: "Операція скасована.", Keyboard: KeyboardMain}, nil
		}

		eff, err := d.step(ctx, userID, sess, text)
		if err != nil {
			d.sessions.Clear(userID)
			return Effect{}, err
		}
		return eff, nil
	}

	switch trigger {
	case TriggerStart:
		eff, err := d.registration.Start(ctx, userID)
		if err != nil {
			return Effect{}, err
		}
		if eff.Next != StateNone {
			d.sessions.Put(userID, Session{State: eff.Next})
		}
		return eff, nil

	case TriggerAddLesson:
		eff := d.booking.Start()
		d.sessions.Put(userID, Session{State: eff.Next})
		return eff, nil

	case TriggerViewProfile:
		return d.viewProfile(ctx, userID)

	case TriggerMySchedule:
		return d.mySchedule(ctx, userID)

	case TriggerCancel:
		return Effect{Text: "Немає активних операцій для скасування.", Keyboard: KeyboardMain}, nil
	}

	// Нераспознанное сообщение вне диалога — молча игнорируем
	return Effect{}, nil
}

// step продвигает активный диалог на один переход и фиксирует его
// результат в хранилище сессий.
func (d *Dispatcher) step(ctx context.Context, userID int64, sess Session, text string) (Effect, error) {
	switch sess.State {
	case StateRegisterPassword, StateRegisterFullName:
		eff, err := d.registration.Step(ctx, userID, sess.State, text)
		if err != nil {
			return Effect{}, err
		}
		d.apply(userID, Session{State: eff.Next})
		return eff, nil

	case StateLessonDate, StateLessonRoom:
		eff, next, err := d.booking.Step(ctx, userID, sess, text)
		if err != nil {
			return Effect{}, err
		}
		next.State = eff.Next
		d.apply(userID, next)
		return eff, nil
	}

	d.logger.Warn("Unknown dialog state, dropping session",
		zap.Int64("telegram_id", userID),
		zap.String("state", string(sess.State)))
	d.sessions.Clear(userID)
	return Effect{}, nil
}

// apply сохраняет следующую сессию; терминальное состояние очищает её.
func (d *Dispatcher) apply(userID int64, next Session) {
	if next.State == StateNone {
		d.sessions.Clear(userID)
		return
	}
	d.sessions.Put(userID, next)
}

// viewProfile — stateless-команда просмотра профиля.
func (d *Dispatcher) viewProfile(ctx context.Context, userID int64) (Effect, error) {
	profile, err := d.teachers.Profile(ctx, userID)
	if err != nil {
		return Effect{}, fmt.Errorf("load profile: %w", err)
	}

	if profile == nil {
		return Effect{Text: "Інформація про профіль недоступна.", Keyboard: KeyboardMain}, nil
	}

	return Effect{Text: FormatProfile(profile), Keyboard: KeyboardMain}, nil
}

// mySchedule — stateless-команда: картинка расписания на текущую неделю.
func (d *Dispatcher) mySchedule(ctx context.Context, userID int64) (Effect, error) {
	entries, err := d.lessons.LessonsByTeacher(ctx, userID)
	if errors.Is(err, service.ErrNotTeacher) {
		return Effect{Text: "Ви не зареєстровані як викладач.", Keyboard: KeyboardMain}, nil
	}
	if err != nil {
		return Effect{}, fmt.Errorf("load lessons: %w", err)
	}

	if len(entries) == 0 {
		return Effect{Text: "У розкладі поки немає уроків.", Keyboard: KeyboardMain}, nil
	}

	weekStart := startOfWeek(d.now())
	png, err := d.renderWeek(entries, weekStart)
	if err != nil {
		return Effect{}, fmt.Errorf("render week image: %w", err)
	}

	return Effect{
		Text:     "Ваш розклад на тиждень:",
		Photo:    png,
		Keyboard: KeyboardMain,
	}, nil
}

// startOfWeek возвращает понедельник недели, содержащей t.
func startOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // воскресенье
	}
	return t.AddDate(0, 0, -(weekday - 1))
}
