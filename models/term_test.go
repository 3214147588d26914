package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampScore(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"below min", 0, ScoreMin},
		{"far below min", -3, ScoreMin},
		{"at min", 1, 1},
		{"neutral", 4, 4},
		{"at max", 7, 7},
		{"above max", 8, ScoreMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampScore(tt.input))
		})
	}
}

func TestInitialScore(t *testing.T) {
	assert.Equal(t, 5, InitialScore(true))
	assert.Equal(t, 3, InitialScore(false))
}

func TestNextScoreStepsAndSaturates(t *testing.T) {
	assert.Equal(t, 5, NextScore(4, true))
	assert.Equal(t, 3, NextScore(4, false))
	assert.Equal(t, ScoreMax, NextScore(ScoreMax, true))
	assert.Equal(t, ScoreMin, NextScore(ScoreMin, false))
}

func TestScoreFor(t *testing.T) {
	term := Term{Statuses: []MasteryStatus{
		{UserID: 1, Score: 6},
		{UserID: 2, Score: 2},
	}}

	assert.Equal(t, 6, term.ScoreFor(1))
	assert.Equal(t, 2, term.ScoreFor(2))
	assert.Equal(t, ScoreDefault, term.ScoreFor(3), "unrecorded users read the neutral default")
}

func TestMasteredByAnyUser(t *testing.T) {
	fresh := Term{}
	assert.False(t, fresh.MasteredByAnyUser())

	partial := Term{Statuses: []MasteryStatus{{UserID: 1, Score: 6}}}
	assert.False(t, partial.MasteredByAnyUser())

	// One user at the max is enough, regardless of who asks.
	mastered := Term{Statuses: []MasteryStatus{
		{UserID: 1, Score: 3},
		{UserID: 2, Score: ScoreMax},
	}}
	assert.True(t, mastered.MasteredByAnyUser())
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory("biology"))
	assert.False(t, ValidCategory("astrology"))
	assert.False(t, ValidCategory(""))
}
