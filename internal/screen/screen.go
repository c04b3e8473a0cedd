package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cs52quiz/internal/ui/layout"
)

// Screen is one full-window view managed by the router: the splash, the
// quiz itself, or the attempt history.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View draws the area between the app header and footer.
	View(width, height int) string

	// Title is shown centered in the header. Empty hides it.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen put a short status, such as answered
// count or score, on the right of the header.
type StatusProvider interface {
	Status() string
}
