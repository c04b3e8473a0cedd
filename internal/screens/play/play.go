package play

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	qz "github.com/abhisek/cs52quiz/internal/quiz"
	"github.com/abhisek/cs52quiz/internal/router"
	"github.com/abhisek/cs52quiz/internal/screen"
	"github.com/abhisek/cs52quiz/internal/screens/history"
	"github.com/abhisek/cs52quiz/internal/screens/placeholder"
	"github.com/abhisek/cs52quiz/internal/store"
	"github.com/abhisek/cs52quiz/internal/ui/components"
	"github.com/abhisek/cs52quiz/internal/ui/layout"
)

const recordTimeout = 5 * time.Second

// Options configures a PlayScreen.
type Options struct {
	Quiz *qz.Quiz

	// Attempts receives finished attempts. Nil turns the result log off.
	Attempts store.AttemptRepo

	Logger *zap.Logger
}

// PlayScreen hosts the whole quiz: landing page, questions and results.
// Which of them is on screen is decided by the controller through the board.
type PlayScreen struct {
	board *Board
	ctrl  *qz.Controller
	keys  keyMap

	menu       components.Menu
	homeButton components.Button
	cursors    map[int]int // question -> highlighted option

	attempts store.AttemptRepo
	log      *zap.Logger

	last      *qz.Result
	saved     bool
	saveError string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatusProvider = (*PlayScreen)(nil)

// New creates a PlayScreen on the landing page.
func New(opts Options) *PlayScreen {
	q := opts.Quiz
	if q == nil {
		q = qz.Default()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	board := NewBoard()
	s := &PlayScreen{
		board:    board,
		ctrl:     qz.NewController(q, board, log),
		keys:     defaultKeyMap(),
		cursors:  make(map[int]int),
		attempts: opts.Attempts,
		log:      log,
	}

	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "START QUIZ", Hotkey: "s", Action: func() tea.Cmd {
			return func() tea.Msg { return startMsg{} }
		}},
		{Label: "HISTORY", Hotkey: "h", Action: s.openHistory},
		{Label: "QUIT", Hotkey: "q", Action: func() tea.Cmd { return tea.Quit }},
	})
	s.homeButton = components.NewButton("Back to start", true, func() tea.Cmd {
		return func() tea.Msg { return goHomeMsg{} }
	})
	return s
}

func (s *PlayScreen) Init() tea.Cmd {
	return nil
}

func (s *PlayScreen) Title() string {
	return s.ctrl.Quiz().Title
}

// Controller exposes the quiz controller.
func (s *PlayScreen) Controller() *qz.Controller {
	return s.ctrl
}

// Board exposes the rendering surface.
func (s *PlayScreen) Board() *Board {
	return s.board
}

func (s *PlayScreen) Status() string {
	switch s.ctrl.Phase() {
	case qz.PhaseAnswering:
		return fmt.Sprintf("%d/%d answered", s.ctrl.Session().AnsweredCount(), s.ctrl.Quiz().Len())
	case qz.PhaseResults:
		return fmt.Sprintf("%d/%d", s.ctrl.ComputeScore(), s.ctrl.Quiz().MaxScore())
	}
	return ""
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.board.Notice() != "" {
		return []layout.KeyHint{{Key: "Any key", Description: "Dismiss"}}
	}
	k := s.keys
	switch s.ctrl.Phase() {
	case qz.PhaseAnswering:
		return hints(k.Up, k.Pick, k.Choose, k.Prev, k.Next, k.Submit, k.Home)
	case qz.PhaseResults:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back to start"},
			{Key: "Esc", Description: "Home"},
		}
	default:
		return hints(k.Up, k.Start, k.History)
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		s.ctrl.Start()
		return s, nil

	case goHomeMsg:
		s.goHome()
		return s, nil

	case attemptRecordedMsg:
		if s.last == nil || s.last.AttemptID != msg.AttemptID {
			return s, nil
		}
		if msg.Err != nil {
			s.log.Error("record attempt", zap.String("attempt_id", msg.AttemptID), zap.Error(msg.Err))
			s.saveError = msg.Err.Error()
			return s, nil
		}
		s.saved = true
		return s, nil

	case tea.KeyPressMsg:
		// A notice blocks every other input until it is dismissed.
		if s.board.Notice() != "" {
			s.board.Dismiss()
			return s, nil
		}
		switch s.ctrl.Phase() {
		case qz.PhaseLanding:
			return s.updateLanding(msg)
		case qz.PhaseAnswering:
			return s.updateAnswering(msg)
		case qz.PhaseResults:
			return s.updateResults(msg)
		}
	}
	return s, nil
}

func (s *PlayScreen) updateLanding(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *PlayScreen) updateAnswering(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	cur := s.ctrl.Current()

	switch {
	case key.Matches(msg, s.keys.Up, s.keys.Down):
		list, _ := s.optionList(cur).Update(msg)
		s.cursors[cur] = list.Cursor

	case key.Matches(msg, s.keys.Choose):
		s.ctrl.Select(cur, s.cursorFor(cur))

	case key.Matches(msg, s.keys.Next):
		s.ctrl.Advance(cur)

	case key.Matches(msg, s.keys.Prev):
		s.ctrl.Retreat(cur)

	case key.Matches(msg, s.keys.Submit):
		res, ok := s.ctrl.Submit()
		if !ok {
			return s, nil
		}
		s.last = &res
		s.saved = false
		s.saveError = ""
		return s, s.record(res)

	case key.Matches(msg, s.keys.Home):
		s.goHome()

	case key.Matches(msg, s.keys.Pick):
		// Options are numbered from 1 on screen.
		opt := int(msg.String()[0] - '1')
		if s.ctrl.Select(cur, opt) {
			s.cursors[cur] = opt
		}
	}
	return s, nil
}

func (s *PlayScreen) updateResults(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if key.Matches(msg, s.keys.Home) {
		s.goHome()
		return s, nil
	}
	var cmd tea.Cmd
	s.homeButton, cmd = s.homeButton.Update(msg)
	return s, cmd
}

func (s *PlayScreen) goHome() {
	s.ctrl.ResetToHome()
	s.cursors = make(map[int]int)
	s.last = nil
	s.saved = false
	s.saveError = ""
}

func (s *PlayScreen) openHistory() tea.Cmd {
	var next screen.Screen
	if s.attempts == nil {
		next = placeholder.New("History", "The result log is turned off.\nRun without --no-record to keep past results.")
	} else {
		next = history.New(s.attempts, s.ctrl.Quiz().Title)
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

// record writes res to the attempt log off the update loop.
func (s *PlayScreen) record(res qz.Result) tea.Cmd {
	if s.attempts == nil {
		return nil
	}
	repo := s.attempts
	rec := attemptRecord(res)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		return attemptRecordedMsg{AttemptID: rec.ID, Err: repo.AppendAttempt(ctx, rec)}
	}
}

func attemptRecord(res qz.Result) store.AttemptRecord {
	answers := make([]store.AnswerRecord, 0, len(res.Answers))
	for _, a := range res.Answers {
		answers = append(answers, store.AnswerRecord{
			Question: a.Question,
			Option:   a.Option,
			Label:    a.Label,
			Weight:   a.Weight,
		})
	}
	return store.AttemptRecord{
		ID:          res.AttemptID,
		QuizTitle:   res.QuizTitle,
		Score:       res.Score,
		MaxScore:    res.MaxScore,
		Tier:        res.Tier.Title,
		Answers:     answers,
		CompletedAt: res.CompletedAt,
	}
}

func (s *PlayScreen) cursorFor(question int) int {
	if c, ok := s.cursors[question]; ok {
		return c
	}
	if _, idx, ok := s.ctrl.Session().Selected(question); ok {
		return idx
	}
	return 0
}

func (s *PlayScreen) optionList(question int) components.OptionList {
	qu, _ := s.ctrl.Quiz().Question(question)
	labels := make([]string, len(qu.Options))
	for i, o := range qu.Options {
		labels[i] = o.Label
	}
	_, chosen, _ := s.ctrl.Session().Selected(question)
	list := components.NewOptionList(qu.Prompt, labels, chosen)
	list.Cursor = s.cursorFor(question)
	return list
}
