package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/casino-cli/internal/randutil"
	"github.com/lox/casino-cli/internal/rps"
	"github.com/lox/casino-cli/internal/statistics"
	"github.com/lox/casino-cli/internal/wager"
)

func TestRPSOutcomeMatchesReveal(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		variant := NewRPS(randutil.New(seed))
		sio := &scriptIO{choices: []string{"r"}}

		result, err := variant.Play(sio)
		require.NoError(t, err)

		reveals := eventsOf[SignsRevealed](sio)
		require.Len(t, reveals, 1)
		assert.Equal(t, rps.Rock, reveals[0].Player)

		var want statistics.Outcome
		switch rps.Resolve(rps.Rock, reveals[0].Opponent) {
		case rps.PlayerWins:
			want = statistics.Win
		case rps.OpponentWins:
			want = statistics.Loss
		default:
			want = statistics.Tie
		}
		assert.Equal(t, want, result.Outcome)
		assert.Contains(t, result.Counters, "you:rock")
		assert.Contains(t, result.Counters, "opponent:"+reveals[0].Opponent.String())
	}
}

func TestRPSSettlement(t *testing.T) {
	variant := NewRPS(randutil.New(1))

	outcome, mult := variant.Settlement(RawResult{Outcome: statistics.Win})
	assert.Equal(t, wager.Win, outcome)
	assert.Equal(t, 1.0, mult)

	outcome, _ = variant.Settlement(RawResult{Outcome: statistics.Tie})
	assert.Equal(t, wager.Push, outcome)

	outcome, _ = variant.Settlement(RawResult{Outcome: statistics.Loss})
	assert.Equal(t, wager.Loss, outcome)
}

func TestRPSAcceptsNumericAndWordChoices(t *testing.T) {
	variant := NewRPS(randutil.New(1))
	sio := &scriptIO{choices: []string{"2"}}

	result, err := variant.Play(sio)
	require.NoError(t, err)
	assert.Contains(t, result.Counters, "you:paper")

	variant = NewRPS(randutil.New(1))
	sio = &scriptIO{choices: []string{"scissors"}}

	result, err = variant.Play(sio)
	require.NoError(t, err)
	assert.Contains(t, result.Counters, "you:scissors")
}
