package quiz

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSurface records the last command for every element.
type fakeSurface struct {
	visible       map[Element]bool
	text          map[Element]string
	progress      float64
	progressCalls int
	notices       []string
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		visible: make(map[Element]bool),
		text:    make(map[Element]string),
	}
}

func (f *fakeSurface) SetVisible(el Element, shown bool) { f.visible[el] = shown }
func (f *fakeSurface) SetText(el Element, text string)   { f.text[el] = text }
func (f *fakeSurface) Notify(msg string)                 { f.notices = append(f.notices, msg) }
func (f *fakeSurface) SetProgress(percent float64) {
	f.progress = percent
	f.progressCalls++
}

func (f *fakeSurface) visiblePanels(n int) []int {
	var out []int
	for i := 1; i <= n; i++ {
		if f.visible[Panel(i)] {
			out = append(out, i)
		}
	}
	return out
}

func newTestController(t *testing.T) (*Controller, *fakeSurface) {
	t.Helper()
	s := newFakeSurface()
	c := NewController(Default(), s, nil)
	c.newID = func() string { return "attempt-1" }
	c.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return c, s
}

// answerAll selects option idx for every question.
func answerAll(t *testing.T, c *Controller, idx int) {
	t.Helper()
	for i := 1; i <= c.Quiz().Len(); i++ {
		require.True(t, c.Select(i, idx), "select question %d", i)
	}
}

func TestNewController_StartsOnLanding(t *testing.T) {
	c, s := newTestController(t)

	assert.Equal(t, PhaseLanding, c.Phase())
	assert.True(t, s.visible[ElemLanding])
	assert.False(t, s.visible[ElemHeader])
	assert.False(t, s.visible[ElemResults])
	assert.Empty(t, s.visiblePanels(QuestionCount))
	assert.Equal(t, 0.0, s.progress)
}

func TestStart_ShowsFirstQuestion(t *testing.T) {
	c, s := newTestController(t)
	c.Start()

	assert.Equal(t, PhaseAnswering, c.Phase())
	assert.Equal(t, 1, c.Current())
	assert.False(t, s.visible[ElemLanding])
	assert.True(t, s.visible[ElemHeader])
	assert.True(t, s.visible[ElemQuestions])
	assert.Equal(t, []int{1}, s.visiblePanels(QuestionCount))
}

func TestStart_Idempotent(t *testing.T) {
	c, s := newTestController(t)
	c.Start()
	c.Advance(1)
	c.Advance(2)
	require.Equal(t, 3, c.Current())

	c.Start()
	c.Start()
	assert.Equal(t, 1, c.Current())
	assert.Equal(t, []int{1}, s.visiblePanels(QuestionCount))
}

func TestAdvance(t *testing.T) {
	for i := 1; i < QuestionCount; i++ {
		t.Run(fmt.Sprintf("from %d", i), func(t *testing.T) {
			c, s := newTestController(t)
			c.Start()
			for j := 1; j < i; j++ {
				c.Advance(j)
			}
			require.Equal(t, i, c.Current())

			assert.True(t, c.Advance(i))
			assert.Equal(t, i+1, c.Current())
			assert.Equal(t, []int{i + 1}, s.visiblePanels(QuestionCount))
		})
	}
}

func TestAdvance_LastQuestionIsNoop(t *testing.T) {
	c, s := newTestController(t)
	c.Start()
	for j := 1; j < QuestionCount; j++ {
		c.Advance(j)
	}
	calls := s.progressCalls

	assert.False(t, c.Advance(QuestionCount))
	assert.Equal(t, QuestionCount, c.Current())
	assert.Equal(t, []int{QuestionCount}, s.visiblePanels(QuestionCount))
	assert.Equal(t, calls+1, s.progressCalls, "progress recomputed even without a move")
}

func TestRetreat(t *testing.T) {
	for i := 2; i <= QuestionCount; i++ {
		t.Run(fmt.Sprintf("from %d", i), func(t *testing.T) {
			c, s := newTestController(t)
			c.Start()
			for j := 1; j < i; j++ {
				c.Advance(j)
			}

			assert.True(t, c.Retreat(i))
			assert.Equal(t, i-1, c.Current())
			assert.Equal(t, []int{i - 1}, s.visiblePanels(QuestionCount))
		})
	}
}

func TestRetreat_FirstQuestionIsNoop(t *testing.T) {
	c, s := newTestController(t)
	c.Start()
	calls := s.progressCalls

	assert.False(t, c.Retreat(1))
	assert.Equal(t, 1, c.Current())
	assert.Equal(t, []int{1}, s.visiblePanels(QuestionCount))
	assert.Equal(t, calls+1, s.progressCalls)
}

func TestNavigation_IgnoredOutsideAnswering(t *testing.T) {
	c, s := newTestController(t)

	assert.False(t, c.Advance(1))
	assert.False(t, c.Retreat(2))
	assert.False(t, c.Select(1, 0))
	_, ok := c.Submit()
	assert.False(t, ok)
	assert.Empty(t, s.notices)
	assert.Equal(t, PhaseLanding, c.Phase())
}

func TestRecomputeProgress(t *testing.T) {
	tests := []struct {
		answered int
		want     float64
	}{
		{0, 0},
		{1, 100.0 / 7},
		{3, 3.0 / 7 * 100},
		{6, 6.0 / 7 * 100},
		{7, 100},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d answered", tt.answered), func(t *testing.T) {
			c, s := newTestController(t)
			c.Start()
			for i := 1; i <= tt.answered; i++ {
				c.Select(i, 0)
			}
			got := c.RecomputeProgress()
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.InDelta(t, tt.want, s.progress, 1e-9)
		})
	}
}

func TestRecomputeProgress_ThreeAnswered(t *testing.T) {
	c, _ := newTestController(t)
	c.Start()
	c.Select(1, 0)
	c.Select(4, 1)
	c.Select(7, 2)

	assert.InDelta(t, 42.857142857, c.RecomputeProgress(), 1e-6)
}

func TestRecomputeProgress_Idempotent(t *testing.T) {
	c, _ := newTestController(t)
	c.Start()
	c.Select(2, 1)

	first := c.RecomputeProgress()
	second := c.RecomputeProgress()
	assert.Equal(t, first, second)
}

func TestSelect_RecomputesProgressOnChange(t *testing.T) {
	c, s := newTestController(t)
	c.Start()
	calls := s.progressCalls

	assert.True(t, c.Select(1, 2))
	assert.Equal(t, calls+1, s.progressCalls)

	// Reselecting the same option is not a change.
	assert.False(t, c.Select(1, 2))
	assert.Equal(t, calls+1, s.progressCalls)

	// Switching options keeps a single answer for the question.
	assert.True(t, c.Select(1, 0))
	assert.Equal(t, 1, c.Session().AnsweredCount())
}

func TestSelect_InvalidIgnored(t *testing.T) {
	c, _ := newTestController(t)
	c.Start()

	assert.False(t, c.Select(0, 0))
	assert.False(t, c.Select(8, 0))
	assert.False(t, c.Select(1, 4))
	assert.False(t, c.Select(1, -1))
	assert.Equal(t, 0, c.Session().AnsweredCount())
}

func TestComputeScore(t *testing.T) {
	c, _ := newTestController(t)
	c.Start()
	assert.Equal(t, 0, c.ComputeScore(), "no selections")

	c.Select(1, 0) // 3
	c.Select(2, 1) // 2
	c.Select(5, 2) // 1
	assert.Equal(t, 6, c.ComputeScore(), "unanswered contribute zero")

	c.Select(1, 3) // 0
	assert.Equal(t, 3, c.ComputeScore())
}

func TestAllAnswered(t *testing.T) {
	c, _ := newTestController(t)
	c.Start()
	for i := 1; i <= QuestionCount; i++ {
		assert.False(t, c.AllAnswered(), "%d answered", i-1)
		c.Select(i, 1)
	}
	assert.True(t, c.AllAnswered())
}

func TestSubmit_RejectedWhenIncomplete(t *testing.T) {
	c, s := newTestController(t)
	c.Start()
	for i := 1; i < QuestionCount; i++ {
		c.Select(i, 0)
		c.Advance(i)
	}

	_, ok := c.Submit()
	assert.False(t, ok)
	assert.Equal(t, []string{IncompleteMessage}, s.notices)
	assert.Equal(t, PhaseAnswering, c.Phase())
	assert.Equal(t, []int{QuestionCount}, s.visiblePanels(QuestionCount))
	assert.True(t, s.visible[ElemQuestions])
	assert.False(t, s.visible[ElemResults])
	assert.Empty(t, s.text[ElemResultTitle])
}

func TestSubmit_ShowsResults(t *testing.T) {
	c, s := newTestController(t)
	c.Start()
	answerAll(t, c, 0)

	res, ok := c.Submit()
	require.True(t, ok)

	assert.Equal(t, PhaseResults, c.Phase())
	assert.Equal(t, 21, res.Score)
	assert.Equal(t, 21, res.MaxScore)
	assert.Equal(t, "attempt-1", res.AttemptID)
	assert.Equal(t, "CS52 Mastermind", res.Tier.Title)
	assert.Len(t, res.Answers, QuestionCount)
	assert.Equal(t, "CS52 Mastermind", s.text[ElemResultTitle])
	assert.Equal(t, res.Tier.Description, s.text[ElemResultDescription])
	assert.False(t, s.visible[ElemQuestions])
	assert.True(t, s.visible[ElemResults])
	assert.Equal(t, 100.0, s.progress)
	assert.Empty(t, s.notices)
}

func TestSubmit_IgnoredOnResults(t *testing.T) {
	c, _ := newTestController(t)
	c.Start()
	answerAll(t, c, 3)
	_, ok := c.Submit()
	require.True(t, ok)

	_, ok = c.Submit()
	assert.False(t, ok)
	c.Start()
	assert.Equal(t, PhaseResults, c.Phase(), "only ResetToHome leaves the results page")
}

func TestResetToHome_ClearsEverything(t *testing.T) {
	c, s := newTestController(t)
	c.Start()
	answerAll(t, c, 1)
	c.Advance(1)
	_, ok := c.Submit()
	require.True(t, ok)

	c.ResetToHome()

	assert.Equal(t, PhaseLanding, c.Phase())
	assert.Equal(t, 1, c.Current())
	assert.False(t, c.AllAnswered())
	assert.Equal(t, 0, c.Session().AnsweredCount())
	assert.Equal(t, 0.0, s.progress)
	assert.True(t, s.visible[ElemLanding])
	assert.False(t, s.visible[ElemHeader])
	assert.False(t, s.visible[ElemResults])
	assert.Empty(t, s.visiblePanels(QuestionCount))
}

func TestResetToHome_MidQuiz(t *testing.T) {
	c, s := newTestController(t)
	c.Start()
	c.Select(1, 0)
	c.Advance(1)
	c.Advance(2)

	c.ResetToHome()
	assert.Equal(t, PhaseLanding, c.Phase())
	assert.Empty(t, s.visiblePanels(QuestionCount))

	c.Start()
	assert.Equal(t, 1, c.Current(), "position is not preserved across a reset")
	assert.Equal(t, 0.0, s.progress)
}

func TestResetToHome_NewAttemptID(t *testing.T) {
	c, _ := newTestController(t)
	n := 0
	c.newID = func() string {
		n++
		return fmt.Sprintf("attempt-%d", n)
	}

	c.Start()
	answerAll(t, c, 0)
	first, _ := c.Submit()
	c.ResetToHome()

	c.Start()
	answerAll(t, c, 0)
	second, _ := c.Submit()

	assert.Equal(t, "attempt-1", first.AttemptID)
	assert.Equal(t, "attempt-2", second.AttemptID)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "landing", PhaseLanding.String())
	assert.Equal(t, "answering", PhaseAnswering.String())
	assert.Equal(t, "results", PhaseResults.String())
	assert.Equal(t, "phase(9)", Phase(9).String())
}

func TestPanel(t *testing.T) {
	assert.Equal(t, Element("question3"), Panel(3))
}
