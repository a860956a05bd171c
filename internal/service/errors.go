package service

import "errors"

var (
	// ErrAlreadyRegistered — для пользователя уже существует запись в users,
	// повторная регистрация ничего не изменяет.
	ErrAlreadyRegistered = errors.New("teacher already registered")

	// ErrNotTeacher — действие доступно только зарегистрированным преподавателям.
	ErrNotTeacher = errors.New("user is not a registered teacher")
)
