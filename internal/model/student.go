package model

import "time"

// Student заводится вне бота (импорт из учебной части), бот его только читает.
type Student struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullname"`
	TeacherID int64     `json:"teacher_id"`
	CreatedAt time.Time `json:"created_at"`
}
