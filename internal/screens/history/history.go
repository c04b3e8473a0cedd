package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cs52quiz/internal/router"
	"github.com/abhisek/cs52quiz/internal/screen"
	"github.com/abhisek/cs52quiz/internal/store"
	"github.com/abhisek/cs52quiz/internal/ui/layout"
	"github.com/abhisek/cs52quiz/internal/ui/theme"
)

const recentLimit = 50

type historyLoadedMsg struct {
	Attempts []store.AttemptRecord
	Stats    store.Stats
	Err      error
}

// HistoryScreen lists past attempts of one quiz with their answers.
type HistoryScreen struct {
	repo      store.AttemptRepo
	quizTitle string
	attempts  []store.AttemptRecord
	stats     store.Stats
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. An empty quizTitle lists every quiz.
func New(repo store.AttemptRepo, quizTitle string) *HistoryScreen {
	return &HistoryScreen{
		repo:      repo,
		quizTitle: quizTitle,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo, title := s.repo, s.quizTitle
	return func() tea.Msg {
		ctx := context.Background()
		opts := store.QueryOpts{QuizTitle: title, Limit: recentLimit}

		attempts, err := repo.RecentAttempts(ctx, opts)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		stats, err := repo.Stats(ctx, store.QueryOpts{QuizTitle: title})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Attempts: attempts, Stats: stats}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answers"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No finished attempts yet. Take the quiz!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.summaryLine()))
	b.WriteString("\n\n")

	for i, a := range s.attempts {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %2d / %d  %s",
			prefix, a.CompletedAt.Format("Jan 02, 2006 15:04"), a.Score, a.MaxScore, a.Tier)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, ans := range a.Answers {
				ansLine := fmt.Sprintf("    Q%d  %d) %s  (+%d)", ans.Question, ans.Option+1, ans.Label, ans.Weight)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(ansLine)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func (s *HistoryScreen) summaryLine() string {
	text := fmt.Sprintf("%d attempts   best %d   average %.1f",
		s.stats.Attempts, s.stats.BestScore, s.stats.AverageScore)
	return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(text)
}
