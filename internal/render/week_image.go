// Package render рисует недельное расписание: сетка кабинеты × дни недели.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/mkravets/music_school_bot/internal/model"
)

// Константы размеров и отступов
const (
	imageWidth      = 1000
	imageHeight     = 480
	headerHeight    = 60
	leftLabelsWidth = 90
	cellPadding     = 4
	cellRadius      = 6.0
	totalDaysInWeek = 7
)

// Цветовая схема
var (
	bgColor         = color.RGBA{245, 246, 248, 255}
	gridColor       = color.NRGBA{150, 150, 150, 255}
	textColor       = color.RGBA{80, 85, 90, 220}
	lessonColor     = color.RGBA{133, 193, 85, 220}
	lessonTextColor = color.RGBA{20, 24, 28, 230}
)

const dateLayout = "2006-01-02"

// WeekImage рендерит уроки в PNG-сетку на неделю, начинающуюся с weekStart.
// Подписи числовые (basicfont не покрывает кириллицу). Записи с датой вне
// формата РРРР-ММ-ДД в сетку не попадают: дата в базе — свободный текст.
func WeekImage(entries []*model.ScheduleEntry, weekStart time.Time) ([]byte, error) {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	// Раскладываем уроки по (дата, кабинет)
	lessons := make(map[string]map[string]int)
	for _, entry := range entries {
		if _, err := time.Parse(dateLayout, entry.Date); err != nil {
			continue
		}
		byRoom := lessons[entry.Date]
		if byRoom == nil {
			byRoom = make(map[string]int)
			lessons[entry.Date] = byRoom
		}
		byRoom[entry.Room]++
	}

	colWidth := float64(imageWidth-leftLabelsWidth) / totalDaysInWeek
	rowHeight := float64(imageHeight-headerHeight) / float64(len(model.Classrooms))

	// Заголовок — диапазон недели
	weekEnd := weekStart.AddDate(0, 0, totalDaysInWeek-1)
	title := weekStart.Format("02.01.2006") + " - " + weekEnd.Format("02.01.2006")
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, float64(imageWidth)/2, float64(headerHeight)/3, 0.5, 0.5)

	// Подписи дней
	for day := 0; day < totalDaysInWeek; day++ {
		date := weekStart.AddDate(0, 0, day)
		x := float64(leftLabelsWidth) + colWidth*float64(day)
		dc.DrawStringAnchored(date.Format("02.01"), x+colWidth/2, float64(headerHeight)-14, 0.5, 0.5)
	}

	for i, room := range model.Classrooms {
		y := float64(headerHeight) + rowHeight*float64(i)

		dc.SetColor(textColor)
		dc.DrawStringAnchored(room, float64(leftLabelsWidth)/2, y+rowHeight/2, 0.5, 0.5)

		for day := 0; day < totalDaysInWeek; day++ {
			date := weekStart.AddDate(0, 0, day).Format(dateLayout)
			x := float64(leftLabelsWidth) + colWidth*float64(day)

			if count := lessons[date][room]; count > 0 {
				dc.SetColor(lessonColor)
				dc.DrawRoundedRectangle(
					x+cellPadding, y+cellPadding,
					colWidth-2*cellPadding, rowHeight-2*cellPadding,
					cellRadius,
				)
				dc.Fill()

				dc.SetColor(lessonTextColor)
				dc.DrawStringAnchored(strconv.Itoa(count), x+colWidth/2, y+rowHeight/2, 0.5, 0.5)
			}

			dc.SetColor(gridColor)
			dc.DrawRectangle(x, y, colWidth, rowHeight)
			dc.Stroke()
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode week image: %w", err)
	}
	return buf.Bytes(), nil
}
