// Package state хранит сессии активных диалогов в памяти процесса.
// Обработка сообщений одного пользователя последовательна, мьютекс нужен
// только из-за независимых диалогов разных пользователей.
package state

import (
	"sync"

	"github.com/mkravets/music_school_bot/internal/dialog"
)

// Manager управляет сессиями диалогов, ключ — Telegram ID пользователя
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]dialog.Session
}

// NewManager создаёт новый менеджер сессий
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]dialog.Session),
	}
}

// Get возвращает активную сессию пользователя
func (m *Manager) Get(userID int64) (dialog.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[userID]
	return sess, ok
}

// Put сохраняет сессию; пустое состояние равносильно удалению
func (m *Manager) Put(userID int64, sess dialog.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess.State == dialog.StateNone {
		delete(m.sessions, userID)
		return
	}
	m.sessions[userID] = sess
}

// Clear удаляет сессию вместе с накопленными данными диалога
func (m *Manager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
}
