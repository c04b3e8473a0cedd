package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cs52quiz/internal/ui/theme"
)

// OptionList renders a single-select (radio) list with a movable cursor.
// It does not own the selection: Chosen is set by the caller.
type OptionList struct {
	Prompt string
	Labels []string
	Cursor int
	Chosen int // -1 when nothing is selected
}

// NewOptionList creates an option list with the cursor on the chosen
// option, or on the first one when nothing is chosen.
func NewOptionList(prompt string, labels []string, chosen int) OptionList {
	cursor := chosen
	if cursor < 0 || cursor >= len(labels) {
		cursor = 0
	}
	return OptionList{
		Prompt: prompt,
		Labels: labels,
		Cursor: cursor,
		Chosen: chosen,
	}
}

// Update moves the cursor.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Labels)-1 {
			o.Cursor++
		}
	}
	return o, nil
}

// View renders the prompt and the options.
func (o OptionList) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(o.Prompt) + "\n\n"

	for i, label := range o.Labels {
		prefix := "  "
		if i == o.Cursor {
			prefix = theme.Cursor.Render("▸ ")
		}
		radio := "( )"
		if i == o.Chosen {
			radio = "(•)"
		}

		line := fmt.Sprintf("%s %d)  %s", radio, i+1, label)
		switch {
		case i == o.Chosen:
			line = theme.Selected.Render(line)
		case i == o.Cursor:
			line = lipgloss.NewStyle().Foreground(theme.Accent).Render(line)
		default:
			line = theme.Unselected.Render(line)
		}
		s += prefix + line + "\n"
	}

	return s
}
