package quiz

import (
	"errors"
	"fmt"
)

// NoOption marks a question without a selection in a Change.
const NoOption = -1

// ErrNoSuchOption is returned when a selection names a question or option
// that does not exist.
var ErrNoSuchOption = errors.New("no such option")

// Change is the signal a Session emits on every select or clear.
type Change struct {
	Question int // 1-based
	Previous int // 0-based option index, or NoOption
	Current  int // 0-based option index, or NoOption
}

// Changed reports whether the selection actually moved.
func (c Change) Changed() bool {
	return c.Previous != c.Current
}

// Answer is a single selected option.
type Answer struct {
	Question int    `json:"question"`
	Option   int    `json:"option"`
	Label    string `json:"label"`
	Weight   int    `json:"weight"`
}

// Session holds the per-question selections of one quiz attempt.
// At most one option is selected per question.
type Session struct {
	quiz     *Quiz
	selected map[int]int // question (1-based) -> option (0-based)
}

// NewSession creates an empty session for q.
func NewSession(q *Quiz) *Session {
	return &Session{
		quiz:     q,
		selected: make(map[int]int, q.Len()),
	}
}

// Select records option as the answer to question, replacing any previous
// selection for that question.
func (s *Session) Select(question, option int) (Change, error) {
	qu, ok := s.quiz.Question(question)
	if !ok {
		return Change{}, fmt.Errorf("question %d: %w", question, ErrNoSuchOption)
	}
	if option < 0 || option >= len(qu.Options) {
		return Change{}, fmt.Errorf("question %d option %d: %w", question, option, ErrNoSuchOption)
	}

	prev, had := s.selected[question]
	if !had {
		prev = NoOption
	}
	s.selected[question] = option
	return Change{Question: question, Previous: prev, Current: option}, nil
}

// Clear removes the selection for question, if any.
func (s *Session) Clear(question int) Change {
	prev, had := s.selected[question]
	if !had {
		return Change{Question: question, Previous: NoOption, Current: NoOption}
	}
	delete(s.selected, question)
	return Change{Question: question, Previous: prev, Current: NoOption}
}

// Reset clears every selection and returns one Change per cleared question.
func (s *Session) Reset() []Change {
	var changes []Change
	for i := 1; i <= s.quiz.Len(); i++ {
		if c := s.Clear(i); c.Changed() {
			changes = append(changes, c)
		}
	}
	return changes
}

// Selected returns the selected option for question and its index.
func (s *Session) Selected(question int) (Option, int, bool) {
	idx, ok := s.selected[question]
	if !ok {
		return Option{}, NoOption, false
	}
	qu, _ := s.quiz.Question(question)
	return qu.Options[idx], idx, true
}

// AnsweredCount scans every question and counts those with a selection.
func (s *Session) AnsweredCount() int {
	n := 0
	for i := 1; i <= s.quiz.Len(); i++ {
		if _, _, ok := s.Selected(i); ok {
			n++
		}
	}
	return n
}

// Answers returns the current selections in question order.
func (s *Session) Answers() []Answer {
	answers := make([]Answer, 0, len(s.selected))
	for i := 1; i <= s.quiz.Len(); i++ {
		opt, idx, ok := s.Selected(i)
		if !ok {
			continue
		}
		answers = append(answers, Answer{
			Question: i,
			Option:   idx,
			Label:    opt.Label,
			Weight:   opt.Weight,
		})
	}
	return answers
}
