package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/music_school_bot/internal/dialog"
)

func TestManager_PutGetClear(t *testing.T) {
	m := NewManager()

	_, ok := m.Get(1)
	assert.False(t, ok)

	m.Put(1, dialog.Session{State: dialog.StateLessonRoom, Date: "2025-03-01"})

	sess, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, dialog.StateLessonRoom, sess.State)
	assert.Equal(t, "2025-03-01", sess.Date)

	m.Clear(1)
	_, ok = m.Get(1)
	assert.False(t, ok)
}

func TestManager_PutEmptyStateDeletes(t *testing.T) {
	m := NewManager()

	m.Put(1, dialog.Session{State: dialog.StateRegisterPassword})
	m.Put(1, dialog.Session{})

	_, ok := m.Get(1)
	assert.False(t, ok)
}

func TestManager_SessionsAreIndependent(t *testing.T) {
	m := NewManager()

	m.Put(1, dialog.Session{State: dialog.StateLessonDate})
	m.Put(2, dialog.Session{State: dialog.StateRegisterPassword})

	m.Clear(1)

	sess, ok := m.Get(2)
	require.True(t, ok)
	assert.Equal(t, dialog.StateRegisterPassword, sess.State)
}
