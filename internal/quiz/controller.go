package quiz

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IncompleteMessage is shown when results are requested too early.
const IncompleteMessage = "Please answer all questions before viewing results"

// Element names a region of the rendering surface.
type Element string

const (
	ElemLanding           Element = "front-page"
	ElemHeader            Element = "header"
	ElemQuestions         Element = "questions"
	ElemResults           Element = "Results"
	ElemResultTitle       Element = "ResultClass"
	ElemResultDescription Element = "ResultDescription"
)

// Panel returns the element of the question panel at the 1-based index i.
func Panel(i int) Element {
	return Element(fmt.Sprintf("question%d", i))
}

// Surface is what the controller drives. Implementations only render; all
// quiz state lives in the controller and its session.
type Surface interface {
	SetVisible(el Element, shown bool)
	SetText(el Element, text string)
	SetProgress(percent float64)
	Notify(msg string)
}

// Phase is the controller's state.
type Phase int

const (
	PhaseLanding Phase = iota
	PhaseAnswering
	PhaseResults
)

func (p Phase) String() string {
	switch p {
	case PhaseLanding:
		return "landing"
	case PhaseAnswering:
		return "answering"
	case PhaseResults:
		return "results"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Result is the outcome of a successful Submit.
type Result struct {
	AttemptID   string
	QuizTitle   string
	Score       int
	MaxScore    int
	Tier        Tier
	Answers     []Answer
	CompletedAt time.Time
}

// Controller is the quiz navigation and scoring state machine.
type Controller struct {
	quiz    *Quiz
	session *Session
	surface Surface
	log     *zap.Logger

	phase     Phase
	current   int
	attemptID string

	now   func() time.Time
	newID func() string
}

// NewController creates a controller in the landing phase and brings the
// surface into the matching state. A nil logger disables logging.
func NewController(q *Quiz, surface Surface, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Controller{
		quiz:    q,
		session: NewSession(q),
		surface: surface,
		log:     log,
		current: 1,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	c.showLanding()
	return c
}

// Quiz returns the quiz definition being played.
func (c *Controller) Quiz() *Quiz { return c.quiz }

// Session returns the controller's session.
func (c *Controller) Session() *Session { return c.session }

// Phase returns the current state.
func (c *Controller) Phase() Phase { return c.phase }

// Current returns the 1-based index of the visible question.
func (c *Controller) Current() int { return c.current }

// Start moves to the answering phase showing question 1. Calling it again
// while answering jumps back to question 1. Ignored on the results page.
func (c *Controller) Start() {
	if c.phase == PhaseResults {
		return
	}
	if c.attemptID == "" {
		c.attemptID = c.newID()
	}

	c.surface.SetVisible(ElemLanding, false)
	c.surface.SetVisible(ElemHeader, true)
	c.surface.SetVisible(ElemQuestions, true)
	c.surface.SetVisible(ElemResults, false)
	c.hideAllPanels()
	c.surface.SetVisible(Panel(1), true)

	c.current = 1
	c.phase = PhaseAnswering
	c.log.Info("quiz started",
		zap.String("attempt_id", c.attemptID),
		zap.String("quiz", c.quiz.Title),
		zap.Int("questions", c.quiz.Len()))

	c.RecomputeProgress()
}

// Advance shows the question after current. At the last question it only
// recomputes progress. It reports whether the visible question changed.
func (c *Controller) Advance(current int) bool {
	return c.step(current, current+1)
}

// Retreat shows the question before current. At question 1 it only
// recomputes progress.
func (c *Controller) Retreat(current int) bool {
	return c.step(current, current-1)
}

func (c *Controller) step(from, to int) bool {
	if c.phase != PhaseAnswering {
		return false
	}
	moved := false
	if c.quiz.HasQuestion(from) && c.quiz.HasQuestion(to) {
		c.surface.SetVisible(Panel(from), false)
		if c.current != from {
			c.surface.SetVisible(Panel(c.current), false)
		}
		c.surface.SetVisible(Panel(to), true)
		c.current = to
		moved = true
		c.log.Debug("question shown", zap.Int("from", from), zap.Int("to", to))
	}
	c.RecomputeProgress()
	return moved
}

// Select answers question with option and recomputes progress when the
// session reports a change. Only valid while answering.
func (c *Controller) Select(question, option int) bool {
	if c.phase != PhaseAnswering {
		return false
	}
	change, err := c.session.Select(question, option)
	if err != nil {
		c.log.Debug("selection ignored", zap.Error(err))
		return false
	}
	c.onChange(change)
	return change.Changed()
}

func (c *Controller) onChange(change Change) {
	if !change.Changed() {
		return
	}
	c.log.Debug("selection changed",
		zap.Int("question", change.Question),
		zap.Int("previous", change.Previous),
		zap.Int("current", change.Current))
	c.RecomputeProgress()
}

// RecomputeProgress derives progress from the session and pushes it to the
// surface. It returns the percentage it set.
func (c *Controller) RecomputeProgress() float64 {
	pct := 0.0
	if n := c.quiz.Len(); n > 0 {
		pct = float64(c.session.AnsweredCount()) / float64(n) * 100
	}
	c.surface.SetProgress(pct)
	return pct
}

// ComputeScore sums the weights of the selected options. Unanswered
// questions contribute zero.
func (c *Controller) ComputeScore() int {
	total := 0
	for i := 1; i <= c.quiz.Len(); i++ {
		if opt, _, ok := c.session.Selected(i); ok {
			total += opt.Weight
		}
	}
	return total
}

// AllAnswered reports whether every question has a selection.
func (c *Controller) AllAnswered() bool {
	for i := 1; i <= c.quiz.Len(); i++ {
		if _, _, ok := c.session.Selected(i); !ok {
			return false
		}
	}
	return true
}

// Submit shows the results page if every question is answered. Otherwise it
// notifies the user and changes nothing.
func (c *Controller) Submit() (Result, bool) {
	if c.phase != PhaseAnswering {
		return Result{}, false
	}
	if !c.AllAnswered() {
		c.log.Warn("submit rejected",
			zap.String("attempt_id", c.attemptID),
			zap.Int("answered", c.session.AnsweredCount()),
			zap.Int("questions", c.quiz.Len()))
		c.surface.Notify(IncompleteMessage)
		return Result{}, false
	}

	c.RecomputeProgress()
	score := c.ComputeScore()
	tier := c.quiz.TierFor(score)

	c.surface.SetText(ElemResultTitle, tier.Title)
	c.surface.SetText(ElemResultDescription, tier.Description)
	c.surface.SetVisible(ElemQuestions, false)
	c.surface.SetVisible(ElemResults, true)
	c.phase = PhaseResults

	res := Result{
		AttemptID:   c.attemptID,
		QuizTitle:   c.quiz.Title,
		Score:       score,
		MaxScore:    c.quiz.MaxScore(),
		Tier:        tier,
		Answers:     c.session.Answers(),
		CompletedAt: c.now(),
	}
	c.log.Info("quiz submitted",
		zap.String("attempt_id", res.AttemptID),
		zap.Int("score", res.Score),
		zap.String("tier", tier.Title))
	return res, true
}

// ResetToHome returns to the landing page and clears every selection.
func (c *Controller) ResetToHome() {
	cleared := c.session.Reset()
	c.showLanding()
	c.log.Info("returned home",
		zap.String("attempt_id", c.attemptID),
		zap.Int("cleared", len(cleared)))
	c.attemptID = ""
}

func (c *Controller) showLanding() {
	c.surface.SetVisible(ElemLanding, true)
	c.surface.SetVisible(ElemHeader, false)
	c.surface.SetVisible(ElemResults, false)
	c.surface.SetVisible(ElemQuestions, false)
	c.hideAllPanels()
	c.surface.SetProgress(0)
	c.current = 1
	c.phase = PhaseLanding
}

func (c *Controller) hideAllPanels() {
	for i := 1; i <= c.quiz.Len(); i++ {
		c.surface.SetVisible(Panel(i), false)
	}
}
