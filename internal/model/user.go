package model

import "time"

type User struct {
	ID        int64     `json:"id"` // Telegram ID, внешняя идентичность
	FullName  string    `json:"fullname"`
	IsTeacher bool      `json:"is_teacher"`
	CreatedAt time.Time `json:"created_at"`
}
