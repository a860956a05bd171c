package dialog

import "strings"

// Trigger — распознанная стартовая фраза. Сообщение матчится ровно один
// раз на границе, дальше маршрутизация идёт по перечислению.
type Trigger int

const (
	TriggerNone Trigger = iota
	TriggerStart
	TriggerViewProfile
	TriggerAddLesson
	TriggerMySchedule
	TriggerCancel
)

// Тексты кнопок основного меню.
const (
	ButtonViewProfile = "Переглянути профіль"
	ButtonAddLesson   = "Додати урок"
	ButtonMySchedule  = "Мій розклад"
	ButtonCancel      = "Скасувати"
)

// ParseTrigger распознаёт стартовую фразу; точное совпадение, без регулярок.
func ParseTrigger(text string) Trigger {
	switch strings.TrimSpace(text) {
	case "/start":
		return TriggerStart
	case ButtonViewProfile:
		return TriggerViewProfile
	case ButtonAddLesson:
		return TriggerAddLesson
	case ButtonMySchedule:
		return TriggerMySchedule
	case ButtonCancel:
		return TriggerCancel
	}
	return TriggerNone
}
