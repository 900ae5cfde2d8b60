package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeriesState_CanTransition(t *testing.T) {
	tests := []struct {
		from    SeriesState
		to      SeriesState
		allowed bool
	}{
		{SeriesPending, SeriesReleased, true},
		{SeriesPending, SeriesCancelled, true},
		{SeriesPending, SeriesInProgress, false},
		{SeriesPending, SeriesSettled, false},
		{SeriesReleased, SeriesInProgress, true},
		{SeriesReleased, SeriesCancelled, true},
		{SeriesReleased, SeriesSettled, false},
		{SeriesInProgress, SeriesSettled, true},
		{SeriesInProgress, SeriesCancelled, true},
		{SeriesInProgress, SeriesReleased, false},
		{SeriesSettled, SeriesCancelled, false},
		{SeriesCancelled, SeriesReleased, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestMatchStatusFor(t *testing.T) {
	assert.Equal(t, BetPending, MatchStatusFor(3000, 0))
	assert.Equal(t, BetPartiallyMatched, MatchStatusFor(3000, 1000))
	assert.Equal(t, BetMatched, MatchStatusFor(3000, 3000))
}

func TestBet_DerivedFields(t *testing.T) {
	bet := &Bet{Amount: 3000, MatchedAmount: 1000}

	assert.Equal(t, int64(2000), bet.RemainingAmount())
	assert.Equal(t, "33.33", bet.MatchPercentage().StringFixed(2))
}

func TestMatch_OpponentOf(t *testing.T) {
	match := &Match{Player1ID: 3, Player2ID: 4}

	assert.Equal(t, int64(4), match.OpponentOf(3))
	assert.Equal(t, int64(3), match.OpponentOf(4))
	assert.Equal(t, int64(0), match.OpponentOf(99))
}

func TestTransaction_Expired(t *testing.T) {
	now := time.Now()

	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.True(t, (&Transaction{ExpiresAt: &past}).Expired(now))
	assert.False(t, (&Transaction{ExpiresAt: &future}).Expired(now))
	assert.False(t, (&Transaction{}).Expired(now))
}
