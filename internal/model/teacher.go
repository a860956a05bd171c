package model

import "time"

type Teacher struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TeacherProfile — данные для экрана профиля преподавателя.
type TeacherProfile struct {
	TeacherName string   `json:"teacher_name"`
	Students    []string `json:"students"`
}
