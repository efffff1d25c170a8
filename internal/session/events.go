package session

import (
	"github.com/lox/casino-cli/internal/blackjack"
	"github.com/lox/casino-cli/internal/board"
	"github.com/lox/casino-cli/internal/coin"
	"github.com/lox/casino-cli/internal/deck"
	"github.com/lox/casino-cli/internal/rps"
	"github.com/lox/casino-cli/internal/statistics"
)

// Event is a one-way display notification. The IO boundary switches on the
// concrete type.
type Event any

// RoundStarted is published when a new round begins.
type RoundStarted struct {
	Variant string
	Balance int
}

// WagerPlaced is published after a wager has been escrowed.
type WagerPlaced struct {
	Amount  int
	Balance int
}

// WagerRejected is published when a wager fails validation.
type WagerRejected struct {
	Err error
}

// BlackjackDeal shows both initial hands. HideHole hides the dealer's first
// card during the player's turn.
type BlackjackDeal struct {
	Player   *blackjack.Hand
	Dealer   *blackjack.Hand
	HideHole bool
}

// CardDrawn shows a single drawn card and the resulting hand.
type CardDrawn struct {
	Who  string
	Card deck.Card
	Hand *blackjack.Hand
}

// DealerReveal shows the dealer's full hand at the start of the dealer turn.
type DealerReveal struct {
	Dealer *blackjack.Hand
}

// BoardUpdated shows the board after a move.
type BoardUpdated struct {
	Board *board.Board
}

// OpponentMoved reports the opponent's chosen cell (0-based).
type OpponentMoved struct {
	Position int
}

// CoinFlipped reports the coin result.
type CoinFlipped struct {
	Side coin.Side
}

// SignsRevealed reports both hand signs after the simultaneous reveal.
type SignsRevealed struct {
	Player   rps.Sign
	Opponent rps.Sign
}

// RoundResolved reports the settled result of a round.
type RoundResolved struct {
	Outcome statistics.Outcome
	Natural bool
	Detail  string
	Wager   int
	Payout  int
	Balance int
}

// StatsSnapshot carries a statistics snapshot for display.
type StatsSnapshot struct {
	Variant string
	Stats   statistics.Snapshot
}
