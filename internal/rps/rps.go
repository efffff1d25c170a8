// Package rps implements hand-sign resolution for rock paper scissors.
package rps

import rand "math/rand/v2"

// Sign is one of the three hand signs.
type Sign int

const (
	Rock Sign = iota
	Paper
	Scissors
)

// Signs lists all signs in canonical order.
var Signs = []Sign{Rock, Paper, Scissors}

// String returns the sign name
func (s Sign) String() string {
	switch s {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "unknown"
	}
}

// Beats returns true if s defeats other: rock beats scissors, paper beats
// rock, scissors beats paper.
func (s Sign) Beats(other Sign) bool {
	switch s {
	case Rock:
		return other == Scissors
	case Paper:
		return other == Rock
	case Scissors:
		return other == Paper
	default:
		return false
	}
}

// Result is the outcome of a reveal from the player's perspective.
type Result int

const (
	PlayerWins Result = iota
	OpponentWins
	Draw
)

// Resolve compares a player sign against an opponent sign.
func Resolve(player, opponent Sign) Result {
	switch {
	case player == opponent:
		return Draw
	case player.Beats(opponent):
		return PlayerWins
	default:
		return OpponentWins
	}
}

// Random returns a uniformly random sign.
func Random(rng *rand.Rand) Sign {
	return Signs[rng.IntN(len(Signs))]
}
