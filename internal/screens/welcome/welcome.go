package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cs52quiz/internal/router"
	"github.com/abhisek/cs52quiz/internal/screen"
	"github.com/abhisek/cs52quiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 400 * time.Millisecond
	phase2End    = 1200 * time.Millisecond
	totalDur     = 2400 * time.Millisecond
)

const mascotArt = `  ┌─────────────┐
  │  ◉       ◉  │
  │             │
  │    </>      │
  │   ╰───╯     │
  │             │
  └─────────────┘
 ▔▔▔▔▔▔▔▔▔▔▔▔▔▔▔▔`

var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before handing over to the quiz.
type WelcomeScreen struct {
	tagline      string
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen showing tagline under the banner. It
// replaces itself with the screen produced by next.
func New(tagline string, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		tagline: tagline,
		next:    next,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	laptop := mascotArt
	// The laptop's prompt blinks.
	if w.tickCount%2 == 1 {
		laptop = strings.Replace(laptop, "</>", "</_", 1)
	}
	rendered := lipgloss.NewStyle().Foreground(theme.Primary).Render(laptop)

	if w.elapsed >= phase1End {
		rendered = addSparkles(rendered, sparkleFrames[w.tickCount%len(sparkleFrames)])
	}
	sections := []string{rendered}

	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")

		// The tagline is typed out over the last phase.
		runes := []rune(w.tagline)
		n := len(runes)
		if span := totalDur - phase2End; span > 0 && w.elapsed < totalDur {
			n = int(float64(len(runes)) * float64(w.elapsed-phase2End) / float64(span))
		}
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(string(runes[:n])))

		sections = append(sections, "", theme.Hint.Render("press any key to continue"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// addSparkles puts sparkles on both sides of the top, middle and bottom
// lines of art.
func addSparkles(art, sparkle string) string {
	left := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
	right := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)

	lines := strings.Split(art, "\n")
	for i, line := range lines {
		switch i {
		case 0, len(lines) / 2:
			lines[i] = left + "  " + line + "  " + right
		case len(lines) - 1:
			lines[i] = right + "  " + line + "  " + left
		default:
			lines[i] = "   " + line + "   "
		}
	}
	return strings.Join(lines, "\n")
}
