// Package simulate runs automated casino sessions in bulk. Each session is an
// independent engine with its own seeded RNG, so runs are reproducible and can
// fan out across goroutines without coordination.
package simulate

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/casino-cli/internal/randutil"
	"github.com/lox/casino-cli/internal/session"
	"github.com/lox/casino-cli/internal/statistics"
	"github.com/lox/casino-cli/internal/wager"
)

// Config holds configuration for running simulations.
type Config struct {
	Sessions    int
	Rounds      int
	Wager       int
	Balance     int
	Seed        int64
	Parallelism int
	NewVariant  func(rng *rand.Rand) session.Variant
	Logger      *log.Logger
}

// SessionReport is the outcome of one automated session.
type SessionReport struct {
	Session      int
	Seed         int64
	Rounds       int
	FinalBalance int
	Busted       bool
	Stats        statistics.Snapshot
}

// Report aggregates every session of a run.
type Report struct {
	Variant  string
	Sessions []SessionReport
}

// TotalRounds sums rounds played across all sessions.
func (r *Report) TotalRounds() int {
	total := 0
	for _, s := range r.Sessions {
		total += s.Rounds
	}
	return total
}

// Busts counts sessions that ran out of money before finishing.
func (r *Report) Busts() int {
	busts := 0
	for _, s := range r.Sessions {
		if s.Busted {
			busts++
		}
	}
	return busts
}

// WinRate is the fraction of rounds won across all sessions.
func (r *Report) WinRate() float64 {
	rounds, wins := 0, 0
	for _, s := range r.Sessions {
		rounds += s.Stats.Rounds
		wins += s.Stats.Wins
	}
	if rounds == 0 {
		return 0
	}
	return float64(wins) / float64(rounds)
}

// MeanFinalBalance averages final balances across all sessions.
func (r *Report) MeanFinalBalance() float64 {
	if len(r.Sessions) == 0 {
		return 0
	}
	total := 0
	for _, s := range r.Sessions {
		total += s.FinalBalance
	}
	return float64(total) / float64(len(r.Sessions))
}

// Runner executes automated sessions.
type Runner struct {
	config Config
}

// New creates a runner with the given configuration.
func New(config Config) *Runner {
	return &Runner{config: config}
}

// Run plays every session and returns the aggregated report. Sessions run
// concurrently up to Parallelism, each fully isolated from the others.
func (r *Runner) Run() (*Report, error) {
	if r.config.Sessions < 1 {
		return nil, fmt.Errorf("at least one session required")
	}
	if r.config.Wager < 1 {
		return nil, fmt.Errorf("wager must be positive")
	}

	parallelism := r.config.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	reports := make([]SessionReport, r.config.Sessions)

	var g errgroup.Group
	g.SetLimit(parallelism)
	for i := 0; i < r.config.Sessions; i++ {
		g.Go(func() error {
			report, err := r.playSession(i)
			if err != nil {
				return fmt.Errorf("session %d: %w", i, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	variant := r.config.NewVariant(randutil.New(r.config.Seed))
	return &Report{Variant: variant.Name(), Sessions: reports}, nil
}

// playSession runs one full session of up to Rounds rounds, stopping early if
// the bankroll is exhausted.
func (r *Runner) playSession(index int) (SessionReport, error) {
	// Independent seed per session, same scheme as seeded shuffles elsewhere.
	seed := r.config.Seed + int64(index)
	rng := randutil.New(seed)

	ledger := wager.NewLedger(r.config.Balance)
	stats := statistics.NewTracker()
	io := NewAutoIO(rng, r.config.Wager)
	logger := r.config.Logger.With("session", index, "seed", seed)
	engine := session.NewEngine(r.config.NewVariant(rng), ledger, stats, io, logger)

	played := 0
	for played < r.config.Rounds && engine.Balance() > 0 {
		if err := engine.PlayRound(); err != nil {
			return SessionReport{}, err
		}
		played++
	}

	return SessionReport{
		Session:      index,
		Seed:         seed,
		Rounds:       played,
		FinalBalance: engine.Balance(),
		Busted:       engine.Balance() == 0,
		Stats:        engine.Stats(),
	}, nil
}
