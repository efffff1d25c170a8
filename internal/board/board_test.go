package board

import "testing"

// fill places marks on the board at the given positions, panicking in tests
// via t.Fatal on illegal setups.
func fill(t *testing.T, b *Board, mark Mark, positions ...int) {
	t.Helper()
	for _, pos := range positions {
		if err := b.Move(pos, mark); err != nil {
			t.Fatalf("setup move %d failed: %v", pos, err)
		}
	}
}

func TestWinnerRows(t *testing.T) {
	b := New(3)
	fill(t, b, Cross, 0, 1, 2)
	if b.Winner() != Cross {
		t.Errorf("Expected Cross to win top row, got %v", b.Winner())
	}
}

func TestWinnerColumns(t *testing.T) {
	b := New(3)
	fill(t, b, Nought, 1, 4, 7)
	if b.Winner() != Nought {
		t.Errorf("Expected Nought to win middle column, got %v", b.Winner())
	}
}

func TestWinnerDiagonals(t *testing.T) {
	b := New(3)
	fill(t, b, Cross, 0, 4, 8)
	if b.Winner() != Cross {
		t.Errorf("Expected Cross to win main diagonal, got %v", b.Winner())
	}

	b = New(3)
	fill(t, b, Nought, 2, 4, 6)
	if b.Winner() != Nought {
		t.Errorf("Expected Nought to win anti-diagonal, got %v", b.Winner())
	}
}

func TestWinnerFourByFour(t *testing.T) {
	b := New(4)
	fill(t, b, Cross, 0, 5, 10, 15)
	if b.Winner() != Cross {
		t.Errorf("Expected Cross to win 4x4 diagonal, got %v", b.Winner())
	}

	// Three in a row is not enough on a 4x4 board.
	b = New(4)
	fill(t, b, Nought, 0, 1, 2)
	if b.Winner() != Empty {
		t.Errorf("Expected no winner for partial row, got %v", b.Winner())
	}
}

func TestFullBoardNoLine(t *testing.T) {
	// X O X / O X O / O X O — full board with no completed line.
	b := New(3)
	fill(t, b, Cross, 0, 2, 4, 7)
	fill(t, b, Nought, 1, 3, 5, 6, 8)

	if b.Winner() != Empty {
		t.Errorf("Expected no winner, got %v", b.Winner())
	}
	if !b.Full() {
		t.Error("Expected board to be full")
	}
}

func TestIllegalMoves(t *testing.T) {
	b := New(3)
	fill(t, b, Cross, 4)

	if err := b.Move(4, Nought); err != ErrIllegalMove {
		t.Errorf("Expected ErrIllegalMove for occupied cell, got %v", err)
	}
	if err := b.Move(9, Nought); err != ErrIllegalMove {
		t.Errorf("Expected ErrIllegalMove for out-of-range cell, got %v", err)
	}
	if err := b.Move(-1, Nought); err != ErrIllegalMove {
		t.Errorf("Expected ErrIllegalMove for negative cell, got %v", err)
	}
	if b.Moves() != 1 {
		t.Errorf("Illegal moves must not mutate the board, moves = %d", b.Moves())
	}
}

func TestReset(t *testing.T) {
	b := New(3)
	fill(t, b, Cross, 0, 1)
	b.Reset()

	if b.Moves() != 0 {
		t.Errorf("Expected 0 moves after reset, got %d", b.Moves())
	}
	for i := 0; i < b.Cells(); i++ {
		if b.Cell(i) != Empty {
			t.Errorf("Expected cell %d empty after reset, got %v", i, b.Cell(i))
		}
	}
}

func TestMoveCountMatchesMarks(t *testing.T) {
	b := New(3)
	fill(t, b, Cross, 0, 4)
	fill(t, b, Nought, 8)

	if b.Moves() != 3 {
		t.Errorf("Expected 3 moves, got %d", b.Moves())
	}
	if len(b.Empties()) != 6 {
		t.Errorf("Expected 6 empty cells, got %d", len(b.Empties()))
	}
}
