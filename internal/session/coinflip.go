package session

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/lox/casino-cli/internal/coin"
	"github.com/lox/casino-cli/internal/statistics"
	"github.com/lox/casino-cli/internal/wager"
)

// CoinFlip is the simplest outcome-draw variant: call a side, flip once,
// even money payout. There are no ties.
type CoinFlip struct {
	rng *rand.Rand
}

// NewCoinFlip creates the coin flip variant.
func NewCoinFlip(rng *rand.Rand) *CoinFlip {
	return &CoinFlip{rng: rng}
}

// Name implements Variant.
func (c *CoinFlip) Name() string {
	return "coinflip"
}

// Reset implements Variant. The coin flip holds no per-round state.
func (c *CoinFlip) Reset() {}

// Play collects the player's call and performs the single reveal.
func (c *CoinFlip) Play(io IO) (RawResult, error) {
	var call coin.Side
	err := io.RequestChoice("Heads (h) or Tails (t)?", []string{"h", "t"}, func(choice string) error {
		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "h", "heads":
			call = coin.Heads
		case "t", "tails":
			call = coin.Tails
		default:
			return fmt.Errorf("enter 'h' for heads or 't' for tails")
		}
		return nil
	})
	if err != nil {
		return RawResult{}, err
	}

	flip := coin.Flip(c.rng)
	io.Render(CoinFlipped{Side: flip})

	outcome := statistics.Loss
	if call == flip {
		outcome = statistics.Win
	}

	return RawResult{
		Outcome:  outcome,
		Detail:   fmt.Sprintf("called %s, landed %s", call, flip),
		Counters: []string{flip.String()},
	}, nil
}

// Settlement implements Variant: even money on a win.
func (c *CoinFlip) Settlement(r RawResult) (wager.Outcome, float64) {
	if r.Outcome == statistics.Win {
		return wager.Win, 1.0
	}
	return wager.Loss, 0
}
