package quiz

// Option is a single selectable answer carrying a score weight.
type Option struct {
	Label  string `json:"label" yaml:"label"`
	Weight int    `json:"weight" yaml:"weight"`
}

// Question is one panel of the quiz. Its options are mutually exclusive.
type Question struct {
	Prompt  string   `json:"prompt" yaml:"prompt"`
	Options []Option `json:"options" yaml:"options"`
}

// MaxWeight returns the highest weight among the question's options.
func (q Question) MaxWeight() int {
	best := 0
	for _, o := range q.Options {
		if o.Weight > best {
			best = o.Weight
		}
	}
	return best
}

// Tier is a result band. A score lands in the first tier (in declaration
// order) whose MinScore it reaches; the last tier is the default.
type Tier struct {
	MinScore    int    `json:"min_score" yaml:"min_score"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Quiz is an immutable quiz definition: questions in display order and
// result tiers in descending threshold order.
type Quiz struct {
	Title     string     `json:"title" yaml:"title"`
	Intro     string     `json:"intro,omitempty" yaml:"intro,omitempty"`
	Questions []Question `json:"questions" yaml:"questions"`
	Tiers     []Tier     `json:"tiers" yaml:"tiers"`
}

// Len returns the number of questions (N).
func (q *Quiz) Len() int {
	return len(q.Questions)
}

// HasQuestion reports whether a question exists at the 1-based index i.
func (q *Quiz) HasQuestion(i int) bool {
	return i >= 1 && i <= len(q.Questions)
}

// Question returns the question at the 1-based index i.
func (q *Quiz) Question(i int) (Question, bool) {
	if !q.HasQuestion(i) {
		return Question{}, false
	}
	return q.Questions[i-1], true
}

// MaxScore is the best achievable total. Informational only; tier
// thresholds are configured, not derived from it.
func (q *Quiz) MaxScore() int {
	total := 0
	for _, qu := range q.Questions {
		total += qu.MaxWeight()
	}
	return total
}

// TierFor maps a score to its result tier. Thresholds are tested in
// declaration order; anything below every threshold gets the last tier.
func (q *Quiz) TierFor(score int) Tier {
	if len(q.Tiers) == 0 {
		return Tier{}
	}
	for _, t := range q.Tiers {
		if score >= t.MinScore {
			return t
		}
	}
	return q.Tiers[len(q.Tiers)-1]
}
