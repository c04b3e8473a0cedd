package quiz

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidQuiz wraps every problem found in a quiz definition.
var ErrInvalidQuiz = errors.New("invalid quiz")

// MaxOptionWeight caps a single option's weight.
const MaxOptionWeight = 1000

// Validate checks the semantic rules a quiz must satisfy so that the
// controller's operations are total: at least one question, at least two
// options per question, weights in [0, MaxOptionWeight] whose best total
// fits in an int, and tiers whose thresholds strictly descend down to a
// default tier at 0.
func Validate(q *Quiz) error {
	var errs []error

	if q.Title == "" {
		errs = append(errs, errors.New("title is empty"))
	}
	if len(q.Questions) == 0 {
		errs = append(errs, errors.New("no questions"))
	}
	maxTotal, overflow := 0, false
	for i, qu := range q.Questions {
		n := i + 1
		if qu.Prompt == "" {
			errs = append(errs, fmt.Errorf("question %d: empty prompt", n))
		}
		if len(qu.Options) < 2 {
			errs = append(errs, fmt.Errorf("question %d: need at least 2 options, got %d", n, len(qu.Options)))
		}
		for j, o := range qu.Options {
			if o.Weight < 0 {
				errs = append(errs, fmt.Errorf("question %d option %d: negative weight %d", n, j+1, o.Weight))
			}
			if o.Weight > MaxOptionWeight {
				errs = append(errs, fmt.Errorf("question %d option %d: weight %d exceeds %d", n, j+1, o.Weight, MaxOptionWeight))
			}
		}
		if w := qu.MaxWeight(); w > 0 && !overflow {
			if w > math.MaxInt-maxTotal {
				overflow = true
			} else {
				maxTotal += w
			}
		}
	}
	if overflow {
		errs = append(errs, errors.New("maximum score overflows int"))
	}

	if len(q.Tiers) == 0 {
		errs = append(errs, errors.New("no tiers"))
	}
	for i, t := range q.Tiers {
		if t.Title == "" {
			errs = append(errs, fmt.Errorf("tier %d: empty title", i+1))
		}
		if i > 0 && t.MinScore >= q.Tiers[i-1].MinScore {
			errs = append(errs, fmt.Errorf("tier %d: threshold %d does not descend from %d",
				i+1, t.MinScore, q.Tiers[i-1].MinScore))
		}
	}
	if n := len(q.Tiers); n > 0 && q.Tiers[n-1].MinScore != 0 {
		errs = append(errs, fmt.Errorf("last tier must be the default with threshold 0, got %d", q.Tiers[n-1].MinScore))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidQuiz, errors.Join(errs...))
	}
	return nil
}
