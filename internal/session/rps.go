package session

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/lox/casino-cli/internal/rps"
	"github.com/lox/casino-cli/internal/statistics"
	"github.com/lox/casino-cli/internal/wager"
)

// RPS is the hand-sign variant: a simultaneous reveal against a uniformly
// random opponent. A draw pushes the wager.
type RPS struct {
	rng *rand.Rand
}

// NewRPS creates the rock paper scissors variant.
func NewRPS(rng *rand.Rand) *RPS {
	return &RPS{rng: rng}
}

// Name implements Variant.
func (r *RPS) Name() string {
	return "rps"
}

// Reset implements Variant. RPS holds no per-round state.
func (r *RPS) Reset() {}

// Play collects the player's sign and resolves the reveal.
func (r *RPS) Play(io IO) (RawResult, error) {
	var sign rps.Sign
	err := io.RequestChoice("Rock (r), Paper (p) or Scissors (s)?", []string{"r", "p", "s"}, func(choice string) error {
		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "r", "rock", "1":
			sign = rps.Rock
		case "p", "paper", "2":
			sign = rps.Paper
		case "s", "scissors", "3":
			sign = rps.Scissors
		default:
			return fmt.Errorf("enter 'r', 'p' or 's'")
		}
		return nil
	})
	if err != nil {
		return RawResult{}, err
	}

	opponent := rps.Random(r.rng)
	io.Render(SignsRevealed{Player: sign, Opponent: opponent})

	var outcome statistics.Outcome
	switch rps.Resolve(sign, opponent) {
	case rps.PlayerWins:
		outcome = statistics.Win
	case rps.OpponentWins:
		outcome = statistics.Loss
	default:
		outcome = statistics.Tie
	}

	return RawResult{
		Outcome: outcome,
		Detail:  fmt.Sprintf("%s vs %s", sign, opponent),
		Counters: []string{
			"you:" + sign.String(),
			"opponent:" + opponent.String(),
		},
	}, nil
}

// Settlement implements Variant: even money win, draw pushes.
func (r *RPS) Settlement(res RawResult) (wager.Outcome, float64) {
	switch res.Outcome {
	case statistics.Win:
		return wager.Win, 1.0
	case statistics.Tie:
		return wager.Push, 0
	default:
		return wager.Loss, 0
	}
}
