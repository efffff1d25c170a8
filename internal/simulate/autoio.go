package simulate

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/casino-cli/internal/session"
)

// AutoIO implements session.IO without a terminal. It bets a fixed amount
// (capped at the remaining balance) and answers choice prompts at random,
// which makes it a uniform baseline strategy for every variant.
type AutoIO struct {
	rng   *rand.Rand
	wager int
}

// NewAutoIO creates an automated player betting wager per round.
func NewAutoIO(rng *rand.Rand, wager int) *AutoIO {
	return &AutoIO{rng: rng, wager: wager}
}

// RequestWager implements session.IO.
func (a *AutoIO) RequestWager(balance int, place func(amount int) error) error {
	amount := a.wager
	if amount > balance {
		amount = balance
	}
	return place(amount)
}

// RequestChoice implements session.IO. Options are tried in a random order
// until one is accepted; a human would be re-prompted, the automaton just
// moves on to the next candidate.
func (a *AutoIO) RequestChoice(prompt string, options []string, apply func(choice string) error) error {
	var err error
	for _, i := range a.rng.Perm(len(options)) {
		if err = apply(options[i]); err == nil {
			return nil
		}
	}
	return fmt.Errorf("no playable option for %q: %w", prompt, err)
}

// Render implements session.IO. Simulated sessions are headless.
func (a *AutoIO) Render(ev session.Event) {}
