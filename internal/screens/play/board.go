package play

import (
	qz "github.com/abhisek/cs52quiz/internal/quiz"
)

// Board is the rendering surface the quiz controller drives. It only
// records what should be on screen; PlayScreen draws it.
type Board struct {
	visible  map[qz.Element]bool
	text     map[qz.Element]string
	progress float64
	notice   string
}

var _ qz.Surface = (*Board)(nil)

// NewBoard creates an empty board with nothing visible.
func NewBoard() *Board {
	return &Board{
		visible: make(map[qz.Element]bool),
		text:    make(map[qz.Element]string),
	}
}

func (b *Board) SetVisible(el qz.Element, shown bool) {
	b.visible[el] = shown
}

func (b *Board) SetText(el qz.Element, text string) {
	b.text[el] = text
}

func (b *Board) SetProgress(percent float64) {
	b.progress = percent
}

// Notify raises a blocking notice. It stays up until Dismiss.
func (b *Board) Notify(msg string) {
	b.notice = msg
}

// Visible reports whether el is shown.
func (b *Board) Visible(el qz.Element) bool {
	return b.visible[el]
}

// Text returns the text last written to el.
func (b *Board) Text(el qz.Element) string {
	return b.text[el]
}

// Progress returns the progress indicator fill, 0..100.
func (b *Board) Progress() float64 {
	return b.progress
}

// Notice returns the pending notice, or "".
func (b *Board) Notice() string {
	return b.notice
}

// Dismiss clears the pending notice.
func (b *Board) Dismiss() {
	b.notice = ""
}

// VisiblePanel returns the first shown question panel among 1..n.
func (b *Board) VisiblePanel(n int) (int, bool) {
	for i := 1; i <= n; i++ {
		if b.visible[qz.Panel(i)] {
			return i, true
		}
	}
	return 0, false
}
