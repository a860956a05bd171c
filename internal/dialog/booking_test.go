package dialog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// registerTeacher прогоняет пользователя через диалог регистрации.
func registerTeacher(t *testing.T, d *Dispatcher, userID int64, fullName string) {
	t.Helper()
	ctx := context.Background()
	for _, msg := range []string{"/start", testSecret, fullName} {
		_, err := d.Dispatch(ctx, userID, msg)
		require.NoError(t, err)
	}
}

func TestBooking_AddsScheduleEntry(t *testing.T) {
	dir := newFakeDirectory()
	lessons := newFakeLessons(dir)
	d, sessions := newTestDispatcher(dir, lessons)
	ctx := context.Background()
	const userID int64 = 200

	registerTeacher(t, d, userID, "Петро Коваль")

	eff, err := d.Dispatch(ctx, userID, ButtonAddLesson)
	require.NoError(t, err)
	assert.Equal(t, "Введіть дату для нового уроку (у форматі РРРР-ММ-ДД):", eff.Text)

	eff, err = d.Dispatch(ctx, userID, "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, "Виберіть кабінет:", eff.Text)
	assert.Equal(t, KeyboardRooms, eff.Keyboard)

	eff, err = d.Dispatch(ctx, userID, "101")
	require.NoError(t, err)
	assert.Equal(t, "Урок на дату 2025-03-01 у кабінеті 101 успішно додано.", eff.Text)

	require.Len(t, lessons.entries, 1)
	assert.Equal(t, "2025-03-01", lessons.entries[0].Date)
	assert.Equal(t, "101", lessons.entries[0].Room)
	assert.Equal(t, userID, lessons.entries[0].TeacherID)

	_, ok := sessions.Get(userID)
	assert.False(t, ok)
}

func TestBooking_DoubleBookingAllowed(t *testing.T) {
	dir := newFakeDirectory()
	lessons := newFakeLessons(dir)
	d, _ := newTestDispatcher(dir, lessons)
	ctx := context.Background()
	const userID int64 = 201

	registerTeacher(t, d, userID, "Петро Коваль")

	for i := 0; i < 2; i++ {
		for _, msg := range []string{ButtonAddLesson, "2025-03-01", "101"} {
			_, err := d.Dispatch(ctx, userID, msg)
			require.NoError(t, err)
		}
	}

	// Конфликт по (дата, кабинет) не проверяется — две одинаковые записи
	require.Len(t, lessons.entries, 2)
	assert.Equal(t, lessons.entries[0].Date, lessons.entries[1].Date)
	assert.Equal(t, lessons.entries[0].Room, lessons.entries[1].Room)
}

func TestBooking_UnregisteredUserGetsNoRow(t *testing.T) {
	dir := newFakeDirectory()
	lessons := newFakeLessons(dir)
	d, sessions := newTestDispatcher(dir, lessons)
	ctx := context.Background()
	const userID int64 = 202

	// Вход в диалог не проверяет права — проверка на финальном шаге
	_, err := d.Dispatch(ctx, userID, ButtonAddLesson)
	require.NoError(t, err)
	_, err = d.Dispatch(ctx, userID, "2025-03-01")
	require.NoError(t, err)

	eff, err := d.Dispatch(ctx, userID, "101")
	require.NoError(t, err)
	assert.Equal(t, "Ви не зареєстровані як викладач.", eff.Text)

	assert.Empty(t, lessons.entries)
	_, ok := sessions.Get(userID)
	assert.False(t, ok)
}

func TestBooking_ArbitraryDateAndRoomAccepted(t *testing.T) {
	dir := newFakeDirectory()
	lessons := newFakeLessons(dir)
	d, _ := newTestDispatcher(dir, lessons)
	ctx := context.Background()
	const userID int64 = 203

	registerTeacher(t, d, userID, "Петро Коваль")

	// Формат даты и членство кабинета в списке не валидируются
	for _, msg := range []string{ButtonAddLesson, "колись потім", "підвал"} {
		_, err := d.Dispatch(ctx, userID, msg)
		require.NoError(t, err)
	}

	require.Len(t, lessons.entries, 1)
	assert.Equal(t, "колись потім", lessons.entries[0].Date)
	assert.Equal(t, "підвал", lessons.entries[0].Room)
}

func TestBooking_CancelDiscardsDate(t *testing.T) {
	dir := newFakeDirectory()
	lessons := newFakeLessons(dir)
	d, sessions := newTestDispatcher(dir, lessons)
	ctx := context.Background()
	const userID int64 = 204

	registerTeacher(t, d, userID, "Петро Коваль")

	_, err := d.Dispatch(ctx, userID, ButtonAddLesson)
	require.NoError(t, err)
	_, err = d.Dispatch(ctx, userID, "2025-03-01")
	require.NoError(t, err)

	eff, err := d.Dispatch(ctx, userID, ButtonCancel)
	require.NoError(t, err)
	assert.Equal(t, "Операція скасована.", eff.Text)
	_, ok := sessions.Get(userID)
	assert.False(t, ok)
	assert.Empty(t, lessons.entries)

	// Новый диалог не воскрешает отброшенную дату
	for _, msg := range []string{ButtonAddLesson, "2025-04-02", "105"} {
		_, err := d.Dispatch(ctx, userID, msg)
		require.NoError(t, err)
	}

	require.Len(t, lessons.entries, 1)
	assert.Equal(t, "2025-04-02", lessons.entries[0].Date)
	assert.Equal(t, "105", lessons.entries[0].Room)
}
