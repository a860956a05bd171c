package render

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/music_school_bot/internal/model"
)

func TestWeekImage_ProducesPNG(t *testing.T) {
	weekStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	entries := []*model.ScheduleEntry{
		{ID: 1, Date: "2025-03-03", Room: "101", TeacherID: 1},
		{ID: 2, Date: "2025-03-03", Room: "101", TeacherID: 1}, // двойное бронирование
		{ID: 3, Date: "2025-03-07", Room: "105", TeacherID: 1},
	}

	data, err := WeekImage(entries, weekStart)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, imageWidth, img.Bounds().Dx())
	assert.Equal(t, imageHeight, img.Bounds().Dy())
}

func TestWeekImage_SkipsUnparsableDates(t *testing.T) {
	weekStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	entries := []*model.ScheduleEntry{
		{ID: 1, Date: "колись потім", Room: "101", TeacherID: 1},
	}

	// Дата — свободный текст; непарсящиеся записи просто не рисуются
	data, err := WeekImage(entries, weekStart)
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
}

func TestWeekImage_EmptyWeek(t *testing.T) {
	weekStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	data, err := WeekImage(nil, weekStart)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}
