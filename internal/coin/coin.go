// Package coin implements the coin-side domain for the coin flip game.
package coin

import rand "math/rand/v2"

// Side is one face of the coin.
type Side int

const (
	Heads Side = iota
	Tails
)

// String returns the side name
func (s Side) String() string {
	if s == Heads {
		return "heads"
	}
	return "tails"
}

// Flip returns a uniformly random side.
func Flip(rng *rand.Rand) Side {
	return Side(rng.IntN(2))
}
