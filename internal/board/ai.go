package board

import (
	rand "math/rand/v2"

	"github.com/lox/casino-cli/internal/randutil"
)

// ChooseMove picks a cell for self using a fixed greedy priority with no
// lookahead beyond one ply:
//
//  1. a cell that completes a line for self (first in scan order)
//  2. a cell that blocks a completed line for other (first in scan order)
//  3. the centre cell, or for even-sided boards any of the innermost four
//  4. any free corner
//  5. any free cell
//
// Ties within tiers 3-5 break uniformly at random. Calling ChooseMove on a
// full board violates the round state machine and panics.
func ChooseMove(b *Board, self, other Mark, rng *rand.Rand) int {
	if b.Full() {
		panic("ChooseMove called on a full board")
	}

	if pos := b.winningMove(self); pos >= 0 {
		return pos
	}
	if pos := b.winningMove(other); pos >= 0 {
		return pos
	}

	if free := b.freeCells(b.centreCells()); len(free) > 0 {
		return randutil.Pick(rng, free)
	}
	if free := b.freeCells(b.cornerCells()); len(free) > 0 {
		return randutil.Pick(rng, free)
	}

	return randutil.Pick(rng, b.Empties())
}

// winningMove returns the first empty cell that completes a line for mark,
// found by trial-and-undo in scan order, or -1.
func (b *Board) winningMove(mark Mark) int {
	for i, m := range b.cells {
		if m != Empty {
			continue
		}
		b.cells[i] = mark
		won := b.Winner() == mark
		b.cells[i] = Empty
		if won {
			return i
		}
	}
	return -1
}

// centreCells returns the single centre for odd sizes, or the innermost four
// cells for even sizes.
func (b *Board) centreCells() []int {
	n := b.size
	if n%2 == 1 {
		c := n / 2
		return []int{c*n + c}
	}
	lo, hi := n/2-1, n/2
	return []int{
		lo*n + lo,
		lo*n + hi,
		hi*n + lo,
		hi*n + hi,
	}
}

// cornerCells returns the four board-extreme cells.
func (b *Board) cornerCells() []int {
	n := b.size
	return []int{0, n - 1, n * (n - 1), n*n - 1}
}

// freeCells filters positions down to empty cells, preserving order.
func (b *Board) freeCells(positions []int) []int {
	free := positions[:0:0]
	for _, pos := range positions {
		if b.cells[pos] == Empty {
			free = append(free, pos)
		}
	}
	return free
}
