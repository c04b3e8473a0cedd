package play

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/cs52quiz/internal/ui/layout"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Pick    key.Binding
	Choose  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Submit  key.Binding
	Home    key.Binding
	History key.Binding
	Start   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓", "Move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Pick"),
		),
		Choose: key.NewBinding(
			key.WithKeys("space", "enter", "x"),
			key.WithHelp("Space", "Choose"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n", "tab"),
			key.WithHelp("→", "Next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p", "shift+tab"),
			key.WithHelp("←", "Back"),
		),
		Submit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("S", "Results"),
		),
		Home: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Home"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "History"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Select"),
		),
	}
}

// hints converts bindings to footer hints, skipping those without help.
func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}
