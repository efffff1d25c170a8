// Package journal writes a structured JSON record of every settled round,
// one line per round, for later inspection.
package journal

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Round is one settled round's journal entry.
type Round struct {
	Variant  string
	Wager    int
	Outcome  string
	Natural  bool
	Detail   string
	Payout   int
	Balance  int
	Moves    int
	Duration time.Duration
}

// Journal appends round records to a log file as JSON lines.
type Journal struct {
	log    zerolog.Logger
	closer io.Closer
}

// Open creates or appends to the journal file at path.
func Open(path string) (*Journal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &Journal{
		log:    newLogger(f),
		closer: f,
	}, nil
}

// NewWriter creates a journal writing to w. Used by tests.
func NewWriter(w io.Writer) *Journal {
	return &Journal{log: newLogger(w)}
}

// Discard returns a journal that drops all records.
func Discard() *Journal {
	return &Journal{log: zerolog.New(io.Discard)}
}

// Round writes one round entry.
func (j *Journal) Round(r Round) {
	j.log.Info().
		Str("variant", r.Variant).
		Int("wager", r.Wager).
		Str("outcome", r.Outcome).
		Bool("natural", r.Natural).
		Str("detail", r.Detail).
		Int("payout", r.Payout).
		Int("balance", r.Balance).
		Int("moves", r.Moves).
		Dur("duration", r.Duration).
		Msg("round")
}

// Close closes the underlying file, if any.
func (j *Journal) Close() error {
	if j.closer == nil {
		return nil
	}
	return j.closer.Close()
}

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
