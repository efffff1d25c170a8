package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lox/casino-cli/internal/simulate"
)

type SimulateCmd struct {
	Game        string `arg:"" enum:"blackjack,coinflip,rps,tictactoe" help:"Game to simulate"`
	Sessions    int    `default:"100" help:"Number of independent sessions"`
	Rounds      int    `default:"100" help:"Rounds per session"`
	Wager       int    `default:"100" help:"Fixed wager per round"`
	Parallelism int    `default:"4" help:"Concurrent sessions"`
}

func (s *SimulateCmd) Run(rctx *runContext) error {
	fmt.Printf("Simulating %d sessions of %d rounds of %s (seed: %d)\n",
		s.Sessions, s.Rounds, s.Game, rctx.seed)

	runner := simulate.New(simulate.Config{
		Sessions:    s.Sessions,
		Rounds:      s.Rounds,
		Wager:       s.Wager,
		Balance:     rctx.cfg.Game.StartingBalance,
		Seed:        rctx.seed,
		Parallelism: s.Parallelism,
		NewVariant:  rctx.buildVariant(s.Game),
		Logger:      rctx.logger,
	})

	start := time.Now()
	report, err := runner.Run()
	if err != nil {
		return err
	}
	printReport(report, time.Since(start))
	return nil
}

func printReport(r *simulate.Report, duration time.Duration) {
	sessions := len(r.Sessions)
	rounds := r.TotalRounds()

	fmt.Printf("\n=== %s RESULTS ===\n", strings.ToUpper(r.Variant))
	fmt.Printf("Sessions: %d\n", sessions)
	fmt.Printf("Rounds played: %d\n", rounds)
	fmt.Printf("Total time: %v (%.0f rounds/sec)\n",
		duration.Round(time.Millisecond), float64(rounds)/duration.Seconds())
	fmt.Printf("Win rate: %.1f%%\n", r.WinRate()*100)
	fmt.Printf("Mean final balance: $%.0f\n", r.MeanFinalBalance())
	fmt.Printf("Busted sessions: %d (%.1f%%)\n",
		r.Busts(), float64(r.Busts())/float64(sessions)*100)

	printCounters(r)
}

// printCounters merges per-session auxiliary counters (coin sides, signs
// thrown) into one frequency table.
func printCounters(r *simulate.Report) {
	merged := map[string]int{}
	for _, s := range r.Sessions {
		for label, n := range s.Stats.Counters {
			merged[label] += n
		}
	}
	if len(merged) == 0 {
		return
	}

	labels := make([]string, 0, len(merged))
	for label := range merged {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	fmt.Printf("\n=== FREQUENCIES ===\n")
	for _, label := range labels {
		fmt.Printf("%-24s %d\n", label, merged[label])
	}
}
