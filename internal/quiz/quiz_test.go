package quiz

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Shape(t *testing.T) {
	q := Default()
	require.NoError(t, Validate(q))
	assert.Equal(t, QuestionCount, q.Len())
	assert.Len(t, q.Tiers, 4)
	assert.Equal(t, 21, q.MaxScore())
}

func TestTierFor(t *testing.T) {
	q := Default()
	tests := []struct {
		score int
		want  string
	}{
		{21, "CS52 Mastermind"},
		{20, "CS52 Mastermind"},
		{15, "CS52 Mastermind"},
		{14, "CS52 Survivor"},
		{10, "CS52 Survivor"},
		{9, "CS52 Struggler (but with Style)"},
		{6, "CS52 Struggler (but with Style)"},
		{5, "CS52 Dropout (Emotionally)"},
		{0, "CS52 Dropout (Emotionally)"},
		{-3, "CS52 Dropout (Emotionally)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, q.TierFor(tt.score).Title, "score %d", tt.score)
	}
}

func TestTierFor_Monotonic(t *testing.T) {
	q := Default()
	rank := make(map[string]int, len(q.Tiers))
	for i, tier := range q.Tiers {
		rank[tier.Title] = i
	}
	prev := rank[q.TierFor(0).Title]
	for score := 1; score <= q.MaxScore(); score++ {
		cur := rank[q.TierFor(score).Title]
		assert.LessOrEqual(t, cur, prev, "score %d", score)
		prev = cur
	}
}

func TestTierFor_NoTiers(t *testing.T) {
	q := &Quiz{}
	assert.Equal(t, Tier{}, q.TierFor(5))
}

func TestQuestion_Bounds(t *testing.T) {
	q := Default()
	assert.False(t, q.HasQuestion(0))
	assert.True(t, q.HasQuestion(1))
	assert.True(t, q.HasQuestion(QuestionCount))
	assert.False(t, q.HasQuestion(QuestionCount+1))

	_, ok := q.Question(8)
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	valid := func() *Quiz {
		return &Quiz{
			Title: "t",
			Questions: []Question{
				{Prompt: "p", Options: []Option{{Label: "a", Weight: 1}, {Label: "b", Weight: 0}}},
			},
			Tiers: []Tier{{MinScore: 1, Title: "hi"}, {MinScore: 0, Title: "lo"}},
		}
	}

	tests := []struct {
		name   string
		mutate func(q *Quiz)
		want   string
	}{
		{"no title", func(q *Quiz) { q.Title = "" }, "title is empty"},
		{"no questions", func(q *Quiz) { q.Questions = nil }, "no questions"},
		{"one option", func(q *Quiz) { q.Questions[0].Options = q.Questions[0].Options[:1] }, "at least 2 options"},
		{"negative weight", func(q *Quiz) { q.Questions[0].Options[0].Weight = -1 }, "negative weight"},
		{"weight above cap", func(q *Quiz) { q.Questions[0].Options[0].Weight = MaxOptionWeight + 1 }, "exceeds 1000"},
		{"no tiers", func(q *Quiz) { q.Tiers = nil }, "no tiers"},
		{"ascending tiers", func(q *Quiz) { q.Tiers[1].MinScore = 5 }, "does not descend"},
		{"no default tier", func(q *Quiz) { q.Tiers = q.Tiers[:1] }, "threshold 0"},
	}

	require.NoError(t, Validate(valid()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid()
			tt.mutate(q)
			err := Validate(q)
			require.ErrorIs(t, err, ErrInvalidQuiz)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateRejectsScoreOverflow(t *testing.T) {
	q := &Quiz{
		Title: "t",
		Questions: []Question{
			{Prompt: "p1", Options: []Option{{Label: "a", Weight: math.MaxInt}, {Label: "b", Weight: 0}}},
			{Prompt: "p2", Options: []Option{{Label: "a", Weight: math.MaxInt}, {Label: "b", Weight: 0}}},
		},
		Tiers: []Tier{{MinScore: 10, Title: "hi"}, {MinScore: 0, Title: "lo"}},
	}

	err := Validate(q)
	require.ErrorIs(t, err, ErrInvalidQuiz)
	assert.Contains(t, err.Error(), "maximum score overflows")
	assert.Contains(t, err.Error(), "exceeds")
}

func TestValidatedQuizScoresAtTopTier(t *testing.T) {
	q := &Quiz{
		Title: "t",
		Questions: []Question{
			{Prompt: "p1", Options: []Option{{Label: "a", Weight: MaxOptionWeight}, {Label: "b", Weight: 0}}},
			{Prompt: "p2", Options: []Option{{Label: "a", Weight: MaxOptionWeight}, {Label: "b", Weight: 0}}},
		},
		Tiers: []Tier{{MinScore: 10, Title: "hi"}, {MinScore: 0, Title: "lo"}},
	}
	require.NoError(t, Validate(q))
	assert.Equal(t, 2*MaxOptionWeight, q.MaxScore())
	assert.Equal(t, "hi", q.TierFor(q.MaxScore()).Title)
}
