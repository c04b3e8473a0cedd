package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	qz "github.com/abhisek/cs52quiz/internal/quiz"
	"github.com/abhisek/cs52quiz/internal/router"
	"github.com/abhisek/cs52quiz/internal/screen"
	"github.com/abhisek/cs52quiz/internal/screens/play"
	"github.com/abhisek/cs52quiz/internal/screens/welcome"
	"github.com/abhisek/cs52quiz/internal/store"
	"github.com/abhisek/cs52quiz/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Quiz *qz.Quiz

	// Attempts is the result log. Nil disables recording and history.
	Attempts store.AttemptRepo

	Logger *zap.Logger

	// SkipWelcome opens the quiz directly instead of the splash screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    *zap.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the splash screen, or at
// the quiz when opts.SkipWelcome is set.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	q := opts.Quiz
	if q == nil {
		q = qz.Default()
	}
	newPlay := func() screen.Screen {
		return play.New(play.Options{
			Quiz:     q,
			Attempts: opts.Attempts,
			Logger:   log.Named("quiz"),
		})
	}

	var initial screen.Screen
	if opts.SkipWelcome {
		initial = newPlay()
	} else {
		initial = welcome.New(q.Title, newPlay)
	}
	return AppModel{
		router: router.New(initial),
		log:    log,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.log.Info("quit requested")
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	quit := layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return append(hp.KeyHints(), quit)
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}, quit}
	}
	return []layout.KeyHint{{Key: "Any key", Description: "Continue"}, quit}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
