package session

import (
	"fmt"
	rand "math/rand/v2"
	"strconv"
	"strings"

	"github.com/lox/casino-cli/internal/board"
	"github.com/lox/casino-cli/internal/statistics"
	"github.com/lox/casino-cli/internal/wager"
)

// TicTacToe is the board variant: the player marks first and alternates with
// the greedy opponent until a line completes or the board fills.
type TicTacToe struct {
	rng   *rand.Rand
	board *board.Board
}

// NewTicTacToe creates the board variant with the given side length.
func NewTicTacToe(size int, rng *rand.Rand) *TicTacToe {
	return &TicTacToe{
		rng:   rng,
		board: board.New(size),
	}
}

// Name implements Variant.
func (t *TicTacToe) Name() string {
	return "tictactoe"
}

// Reset implements Variant.
func (t *TicTacToe) Reset() {
	t.board.Reset()
}

// Board returns the round's board, for rendering.
func (t *TicTacToe) Board() *board.Board {
	return t.board
}

// Play alternates player and opponent moves, player first, until the board
// resolves.
func (t *TicTacToe) Play(io IO) (RawResult, error) {
	cells := t.board.Cells()
	options := make([]string, cells)
	for i := range options {
		options[i] = strconv.Itoa(i + 1)
	}

	io.Render(BoardUpdated{Board: t.board})

	for {
		prompt := fmt.Sprintf("Position (1-%d) for your X", cells)
		err := io.RequestChoice(prompt, options, func(choice string) error {
			pos, err := strconv.Atoi(strings.TrimSpace(choice))
			if err != nil {
				return fmt.Errorf("enter a number between 1 and %d", cells)
			}
			return t.board.Move(pos-1, board.Cross)
		})
		if err != nil {
			return RawResult{}, err
		}
		io.Render(BoardUpdated{Board: t.board})

		if t.board.Winner() != board.Empty || t.board.Full() {
			break
		}

		pos := board.ChooseMove(t.board, board.Nought, board.Cross, t.rng)
		if err := t.board.Move(pos, board.Nought); err != nil {
			return RawResult{}, fmt.Errorf("opponent chose an illegal cell %d: %w", pos, err)
		}
		io.Render(OpponentMoved{Position: pos})
		io.Render(BoardUpdated{Board: t.board})

		if t.board.Winner() != board.Empty || t.board.Full() {
			break
		}
	}

	return t.result(), nil
}

// result maps the resolved board to a round outcome.
func (t *TicTacToe) result() RawResult {
	moves := t.board.Moves()
	switch t.board.Winner() {
	case board.Cross:
		return RawResult{
			Outcome: statistics.Win,
			Detail:  fmt.Sprintf("line completed in %d moves", moves),
			Moves:   moves,
		}
	case board.Nought:
		return RawResult{
			Outcome: statistics.Loss,
			Detail:  fmt.Sprintf("opponent line in %d moves", moves),
			Moves:   moves,
		}
	default:
		return RawResult{
			Outcome: statistics.Tie,
			Detail:  "board full, no line",
			Moves:   moves,
		}
	}
}

// Settlement implements Variant: even money win, full-board tie pushes.
func (t *TicTacToe) Settlement(r RawResult) (wager.Outcome, float64) {
	switch r.Outcome {
	case statistics.Win:
		return wager.Win, 1.0
	case statistics.Tie:
		return wager.Push, 0
	default:
		return wager.Loss, 0
	}
}
