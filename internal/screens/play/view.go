package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/cs52quiz/internal/quiz"
	"github.com/abhisek/cs52quiz/internal/ui/components"
	"github.com/abhisek/cs52quiz/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	if msg := s.board.Notice(); msg != "" {
		return components.Notice(msg, width, height)
	}

	var sections []string
	if s.board.Visible(qz.ElemLanding) {
		sections = append(sections, s.viewLanding(width))
	}
	if s.board.Visible(qz.ElemHeader) {
		sections = append(sections, s.viewProgress(width))
	}
	if s.board.Visible(qz.ElemQuestions) {
		sections = append(sections, s.viewQuestion(width))
	}
	if s.board.Visible(qz.ElemResults) {
		sections = append(sections, s.viewResults(width))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *PlayScreen) viewLanding(width int) string {
	q := s.ctrl.Quiz()
	cardWidth := components.NoticeWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cardWidth).Render(q.Title))
	b.WriteString("\n\n")
	if q.Intro != "" {
		b.WriteString(theme.Subtitle.Width(cardWidth).Render(q.Intro))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d questions, pick one answer each.", q.Len())))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())
	return b.String()
}

func (s *PlayScreen) viewProgress(width int) string {
	barWidth := components.NoticeWidth(width)
	bar := components.NewProgressBar("", s.board.Progress(), true, barWidth)

	answered := s.ctrl.Session().AnsweredCount()
	status := fmt.Sprintf("Question %d of %d   %d answered", s.ctrl.Current(), s.ctrl.Quiz().Len(), answered)
	return bar.View() + "\n" + theme.Hint.Render(status)
}

func (s *PlayScreen) viewQuestion(width int) string {
	panel, ok := s.board.VisiblePanel(s.ctrl.Quiz().Len())
	if !ok {
		return ""
	}
	list := s.optionList(panel)

	nav := ""
	if panel > 1 {
		nav += theme.ButtonInactive.Render("← Back")
	}
	if panel < s.ctrl.Quiz().Len() {
		if nav != "" {
			nav += "  "
		}
		nav += theme.ButtonInactive.Render("Next →")
	}
	submit := theme.ButtonInactive.Render("S  See results")
	if s.ctrl.AllAnswered() {
		submit = theme.ButtonActive.Render("S  See results")
	}

	body := list.View() + "\n" + lipgloss.JoinHorizontal(lipgloss.Center, nav, "  ", submit)
	return components.Card(body, components.NoticeWidth(width))
}

func (s *PlayScreen) viewResults(width int) string {
	cardWidth := components.NoticeWidth(width)
	q := s.ctrl.Quiz()

	var b strings.Builder
	b.WriteString(theme.Title.Width(cardWidth - 4).Render(s.board.Text(qz.ElemResultTitle)))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(cardWidth - 4).Render(s.board.Text(qz.ElemResultDescription)))
	b.WriteString("\n\n")

	score := s.ctrl.ComputeScore()
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("Score: %d / %d", score, q.MaxScore())))
	b.WriteString("\n")
	if status := s.saveStatus(); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.homeButton.View())

	return components.Card(b.String(), cardWidth)
}

func (s *PlayScreen) saveStatus() string {
	switch {
	case s.attempts == nil:
		return ""
	case s.saveError != "":
		return lipgloss.NewStyle().Foreground(theme.Error).Render("Not saved: " + s.saveError)
	case s.saved:
		return lipgloss.NewStyle().Foreground(theme.Success).Render("Saved to history")
	default:
		return theme.Hint.Render("Saving...")
	}
}

