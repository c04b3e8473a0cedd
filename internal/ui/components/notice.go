package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cs52quiz/internal/ui/theme"
)

// NoticeWidth returns the inner width used for notice and result cards.
func NoticeWidth(frameWidth int) int {
	w := frameWidth - 8
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Notice renders a blocking message box centered in the given area.
func Notice(msg string, width, height int) string {
	body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(msg) +
		"\n\n" +
		theme.Hint.Render("press any key to continue")

	box := theme.Notice.Width(NoticeWidth(width)).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// Card wraps content in a rounded-border card at the given width.
func Card(content string, width int) string {
	return theme.Card.Width(width).Render(content)
}
