package dialog

import (
	"fmt"
	"strings"

	"github.com/mkravets/music_school_bot/internal/model"
)

// FormatProfile рендерит профиль преподавателя: имя и список учеников
// построчно, либо явная пометка что учеников нет.
func FormatProfile(profile *model.TeacherProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ім'я викладача: %s\nУчні:\n", profile.TeacherName)

	if len(profile.Students) == 0 {
		b.WriteString("Немає учнів.")
		return b.String()
	}

	b.WriteString(strings.Join(profile.Students, "\n"))
	return b.String()
}
