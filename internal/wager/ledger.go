// Package wager implements the balance ledger with escrow semantics: a placed
// wager is deducted immediately and held until exactly one settlement.
package wager

import "errors"

var (
	// ErrInvalidAmount is returned for a wager that is zero or negative.
	ErrInvalidAmount = errors.New("wager must be a positive amount")

	// ErrInsufficientFunds is returned when a wager exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWagerPending is returned when placing while a wager is unsettled.
	ErrWagerPending = errors.New("a wager is already escrowed")

	// ErrNoWager is returned when settling without an escrowed wager.
	ErrNoWager = errors.New("no wager escrowed")
)

// Outcome is the settlement applied to an escrowed wager.
type Outcome int

const (
	// Loss forfeits the escrowed amount.
	Loss Outcome = iota
	// Push returns the escrowed amount with no profit or loss.
	Push
	// Win returns the escrowed amount plus escrow times the win multiplier.
	Win
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case Loss:
		return "loss"
	case Push:
		return "push"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}

// Ledger holds a session's balance and at most one escrowed wager. The
// balance never goes negative: wagers are validated at placement and
// settlements only ever credit.
type Ledger struct {
	balance int
	escrow  int
	pending bool
}

// NewLedger creates a ledger with the given starting balance.
func NewLedger(balance int) *Ledger {
	return &Ledger{balance: balance}
}

// Balance returns the current balance, excluding any escrowed wager.
func (l *Ledger) Balance() int {
	return l.balance
}

// Escrowed returns the amount currently held in escrow.
func (l *Ledger) Escrowed() int {
	return l.escrow
}

// Place validates and escrows a wager, deducting it from the balance
// immediately. The balance is untouched on failure.
func (l *Ledger) Place(amount int) error {
	if l.pending {
		return ErrWagerPending
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > l.balance {
		return ErrInsufficientFunds
	}
	l.balance -= amount
	l.escrow = amount
	l.pending = true
	return nil
}

// Settle resolves the escrowed wager and returns the amount credited back to
// the balance. A win credits escrow*(1+multiplier), winnings truncated to an
// integer; a push credits exactly the escrow; a loss credits nothing.
func (l *Ledger) Settle(outcome Outcome, multiplier float64) (int, error) {
	if !l.pending {
		return 0, ErrNoWager
	}

	var credit int
	switch outcome {
	case Win:
		credit = l.escrow + int(float64(l.escrow)*multiplier)
	case Push:
		credit = l.escrow
	case Loss:
		credit = 0
	}

	l.balance += credit
	l.escrow = 0
	l.pending = false
	return credit, nil
}
