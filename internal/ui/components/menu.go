package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cs52quiz/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Hotkey, when set, triggers the item
// directly without moving the cursor first.
type MenuItem struct {
	Label    string
	Hotkey   string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of actions with a cursor.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	m.Selected = m.nextEnabled(-1, 1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// nextEnabled returns the first enabled index after from in direction dir,
// or -1.
func (m Menu) nextEnabled(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return -1
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch k := kmsg.String(); k {
	case "up", "k":
		if i := m.nextEnabled(m.Selected, -1); i >= 0 {
			m.Selected = i
		}
	case "down", "j":
		if i := m.nextEnabled(m.Selected, 1); i >= 0 {
			m.Selected = i
		}
	case "enter":
		return m, m.fire(m.Selected)
	default:
		for i, item := range m.Items {
			if item.Hotkey != "" && item.Hotkey == k {
				m.Selected = i
				return m, m.fire(i)
			}
		}
	}
	return m, nil
}

func (m Menu) fire(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}

// View renders the menu, one item per line, with hotkeys on the right.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("    " + item.Label))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ ") + theme.Selected.Render(item.Label) + hotkeySuffix(item))
		default:
			b.WriteString(theme.Unselected.Render("    "+item.Label) + hotkeySuffix(item))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func hotkeySuffix(item MenuItem) string {
	if item.Hotkey == "" {
		return ""
	}
	return theme.Hint.Render("  (" + item.Hotkey + ")")
}
