// Package board implements an N×N mark grid with line-win detection and a
// greedy single-ply opponent.
package board

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is returned when a move targets an occupied or out-of-range
// cell. The board is left unmodified.
var ErrIllegalMove = errors.New("illegal move: cell occupied or out of range")

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	Cross
	Nought
)

// String returns the display glyph for a mark
func (m Mark) String() string {
	switch m {
	case Cross:
		return "X"
	case Nought:
		return "O"
	default:
		return " "
	}
}

// Board is a square grid of side Size. Cells are indexed row-major from 0.
// A board is owned by exactly one round and reset between rounds.
type Board struct {
	size  int
	cells []Mark
	moves int
}

// New creates an empty board with the given side length.
func New(size int) *Board {
	if size < 2 {
		panic(fmt.Sprintf("board size must be at least 2, got %d", size))
	}
	return &Board{
		size:  size,
		cells: make([]Mark, size*size),
	}
}

// Size returns the side length.
func (b *Board) Size() int {
	return b.size
}

// Cells returns the number of cells on the board.
func (b *Board) Cells() int {
	return b.size * b.size
}

// Moves returns the number of marks placed since the last reset.
func (b *Board) Moves() int {
	return b.moves
}

// Cell returns the mark at the given index.
func (b *Board) Cell(pos int) Mark {
	return b.cells[pos]
}

// Move places a mark at pos, failing with ErrIllegalMove if pos is out of
// range or the cell is occupied.
func (b *Board) Move(pos int, mark Mark) error {
	if pos < 0 || pos >= len(b.cells) || b.cells[pos] != Empty {
		return ErrIllegalMove
	}
	b.cells[pos] = mark
	b.moves++
	return nil
}

// Reset clears the board for a new round.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
	b.moves = 0
}

// Full returns true when no empty cells remain.
func (b *Board) Full() bool {
	return b.moves == len(b.cells)
}

// Winner returns the mark owning a completed line, or Empty if no line is
// complete. All rows, all columns and both full-length diagonals are checked.
func (b *Board) Winner() Mark {
	n := b.size

	for row := 0; row < n; row++ {
		if m := b.lineOwner(row*n, 1); m != Empty {
			return m
		}
	}

	for col := 0; col < n; col++ {
		if m := b.lineOwner(col, n); m != Empty {
			return m
		}
	}

	if m := b.lineOwner(0, n+1); m != Empty {
		return m
	}
	if m := b.lineOwner(n-1, n-1); m != Empty {
		return m
	}

	return Empty
}

// Empties returns the indexes of all empty cells in scan order.
func (b *Board) Empties() []int {
	empties := make([]int, 0, len(b.cells)-b.moves)
	for i, m := range b.cells {
		if m == Empty {
			empties = append(empties, i)
		}
	}
	return empties
}

// lineOwner returns the mark filling the full-length line starting at start
// with the given stride, or Empty.
func (b *Board) lineOwner(start, stride int) Mark {
	first := b.cells[start]
	if first == Empty {
		return Empty
	}
	for i := 1; i < b.size; i++ {
		if b.cells[start+i*stride] != first {
			return Empty
		}
	}
	return first
}
