package model

import "time"

// ScheduleEntry — один урок в расписании преподавателя.
type ScheduleEntry struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"` // свободный текст, ожидается РРРР-ММ-ДД
	Room      string    `json:"room"`
	TeacherID int64     `json:"teacher_id"`
	CreatedAt time.Time `json:"created_at"`
}

// DailyLesson — строка ежедневной рассылки: кому и в каком кабинете.
type DailyLesson struct {
	TeacherUserID int64  `json:"teacher_user_id"`
	Room          string `json:"room"`
}
