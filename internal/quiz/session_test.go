package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_SelectSignalsChange(t *testing.T) {
	s := NewSession(Default())

	c, err := s.Select(2, 1)
	require.NoError(t, err)
	assert.Equal(t, Change{Question: 2, Previous: NoOption, Current: 1}, c)
	assert.True(t, c.Changed())

	c, err = s.Select(2, 1)
	require.NoError(t, err)
	assert.False(t, c.Changed())

	c, err = s.Select(2, 3)
	require.NoError(t, err)
	assert.Equal(t, Change{Question: 2, Previous: 1, Current: 3}, c)
}

func TestSession_SelectOutOfRange(t *testing.T) {
	s := NewSession(Default())

	_, err := s.Select(0, 0)
	assert.ErrorIs(t, err, ErrNoSuchOption)
	_, err = s.Select(1, 9)
	assert.ErrorIs(t, err, ErrNoSuchOption)
	assert.Equal(t, 0, s.AnsweredCount())
}

func TestSession_Selected(t *testing.T) {
	s := NewSession(Default())

	_, idx, ok := s.Selected(1)
	assert.False(t, ok)
	assert.Equal(t, NoOption, idx)

	_, err := s.Select(1, 2)
	require.NoError(t, err)
	opt, idx, ok := s.Selected(1)
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, 1, opt.Weight)
}

func TestSession_ClearAndReset(t *testing.T) {
	s := NewSession(Default())
	for i := 1; i <= 4; i++ {
		_, err := s.Select(i, 0)
		require.NoError(t, err)
	}

	c := s.Clear(1)
	assert.Equal(t, Change{Question: 1, Previous: 0, Current: NoOption}, c)
	assert.False(t, s.Clear(1).Changed())
	assert.Equal(t, 3, s.AnsweredCount())

	changes := s.Reset()
	assert.Len(t, changes, 3)
	assert.Equal(t, 0, s.AnsweredCount())
	assert.Empty(t, s.Answers())
}

func TestSession_AnswersInOrder(t *testing.T) {
	s := NewSession(Default())
	_, _ = s.Select(5, 1)
	_, _ = s.Select(2, 0)

	answers := s.Answers()
	require.Len(t, answers, 2)
	assert.Equal(t, 2, answers[0].Question)
	assert.Equal(t, 3, answers[0].Weight)
	assert.Equal(t, 5, answers[1].Question)
	assert.Equal(t, "Go when I'm truly stuck", answers[1].Label)
}
