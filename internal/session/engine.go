// Package session implements the round lifecycle shared by all game
// variants: wager collection, variant play, settlement and statistics.
package session

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/casino-cli/internal/journal"
	"github.com/lox/casino-cli/internal/statistics"
	"github.com/lox/casino-cli/internal/wager"
)

// Phase is the engine's position in the round state machine.
type Phase int

const (
	AwaitingWager Phase = iota
	InPlay
	Resolved
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case AwaitingWager:
		return "awaiting-wager"
	case InPlay:
		return "in-play"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// RawResult is the variant-specific result of one played round, before
// settlement mapping.
type RawResult struct {
	Outcome  statistics.Outcome
	Natural  bool     // two-card 21 win
	Detail   string   // human-readable summary ("dealer busts", "three in a row")
	Counters []string // labels for auxiliary frequency counters
	Moves    int      // board moves to completion, 0 when not applicable
}

// Variant is a pluggable game logic: it drives its own play sequence through
// the IO boundary and maps its raw result to a settlement.
type Variant interface {
	// Name returns the variant identifier (e.g. "blackjack").
	Name() string

	// Play runs the variant's play sequence for one round. The wager has
	// already been escrowed. A non-nil error means the player abandoned the
	// round mid-play.
	Play(io IO) (RawResult, error)

	// Settlement maps a raw result to a ledger settlement.
	Settlement(r RawResult) (wager.Outcome, float64)

	// Reset clears all per-round state (hands, board) ahead of a new round.
	Reset()
}

// Engine orchestrates one round at a time for a single variant: it collects
// the wager, drives play, settles the ledger and updates statistics. Strictly
// sequential; a round completes fully before the next begins.
type Engine struct {
	variant Variant
	ledger  *wager.Ledger
	stats   *statistics.Tracker
	io      IO
	clock   quartz.Clock
	journal *journal.Journal
	logger  *log.Logger
	phase   Phase
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine clock, used to measure round duration.
func WithClock(clock quartz.Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithJournal attaches a structured round journal.
func WithJournal(j *journal.Journal) Option {
	return func(e *Engine) { e.journal = j }
}

// NewEngine creates an engine for the given variant.
func NewEngine(variant Variant, ledger *wager.Ledger, stats *statistics.Tracker, io IO, logger *log.Logger, opts ...Option) *Engine {
	e := &Engine{
		variant: variant,
		ledger:  ledger,
		stats:   stats,
		io:      io,
		clock:   quartz.NewReal(),
		journal: journal.Discard(),
		logger:  logger.WithPrefix(variant.Name()),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Phase returns the engine's current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Balance returns the ledger balance.
func (e *Engine) Balance() int {
	return e.ledger.Balance()
}

// Stats returns a snapshot of the session statistics.
func (e *Engine) Stats() statistics.Snapshot {
	return e.stats.Snapshot()
}

// PlayRound runs a single complete round: wager, play, settlement,
// statistics. The caller decides whether to start another round.
func (e *Engine) PlayRound() error {
	e.variant.Reset()
	e.phase = AwaitingWager
	start := e.clock.Now()

	e.io.Render(RoundStarted{Variant: e.variant.Name(), Balance: e.ledger.Balance()})

	err := e.io.RequestWager(e.ledger.Balance(), func(amount int) error {
		if err := e.ledger.Place(amount); err != nil {
			e.io.Render(WagerRejected{Err: err})
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	amount := e.ledger.Escrowed()
	e.logger.Debug("Wager placed", "amount", amount, "balance", e.ledger.Balance())
	e.io.Render(WagerPlaced{Amount: amount, Balance: e.ledger.Balance()})

	e.phase = InPlay
	result, err := e.variant.Play(e.io)
	if err != nil {
		// Abandoned mid-round: the escrowed wager stays forfeited, matching
		// the process-interrupt semantics.
		return err
	}

	outcome, multiplier := e.variant.Settlement(result)
	payout, err := e.ledger.Settle(outcome, multiplier)
	if err != nil {
		return err
	}

	e.stats.Record(result.Outcome)
	for _, label := range result.Counters {
		e.stats.Count(label)
	}
	if result.Moves > 0 {
		e.stats.RecordMoves(result.Outcome, result.Moves)
	}

	e.phase = Resolved
	duration := e.clock.Since(start)

	e.logger.Debug("Round resolved",
		"outcome", result.Outcome,
		"wager", amount,
		"payout", payout,
		"balance", e.ledger.Balance(),
		"duration", duration)

	e.journal.Round(journal.Round{
		Variant:  e.variant.Name(),
		Wager:    amount,
		Outcome:  result.Outcome.String(),
		Natural:  result.Natural,
		Detail:   result.Detail,
		Payout:   payout,
		Balance:  e.ledger.Balance(),
		Moves:    result.Moves,
		Duration: duration,
	})

	e.io.Render(RoundResolved{
		Outcome: result.Outcome,
		Natural: result.Natural,
		Detail:  result.Detail,
		Wager:   amount,
		Payout:  payout,
		Balance: e.ledger.Balance(),
	})
	return nil
}

// ShowStats renders a statistics snapshot through the IO boundary.
func (e *Engine) ShowStats() {
	e.io.Render(StatsSnapshot{Variant: e.variant.Name(), Stats: e.stats.Snapshot()})
}
