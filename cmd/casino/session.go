package main

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"strings"

	"github.com/chzyer/readline"

	"github.com/lox/casino-cli/internal/display"
	"github.com/lox/casino-cli/internal/randutil"
	"github.com/lox/casino-cli/internal/session"
	"github.com/lox/casino-cli/internal/statistics"
	"github.com/lox/casino-cli/internal/wager"
)

// runSession drives one interactive session of a single variant: rounds are
// played until the player quits or the bankroll runs dry.
func runSession(rctx *runContext, build func(rng *rand.Rand) session.Variant) error {
	prompter, err := display.NewPrompter()
	if err != nil {
		return err
	}
	defer prompter.Close()

	rng := randutil.New(rctx.seed)
	ledger := wager.NewLedger(rctx.cfg.Game.StartingBalance)
	engine := session.NewEngine(build(rng), ledger, statistics.NewTracker(), prompter, rctx.logger,
		session.WithJournal(rctx.journal))

	for {
		if engine.Balance() == 0 {
			fmt.Println("You're out of money. Thanks for playing!")
			engine.ShowStats()
			return nil
		}

		var action string
		err := prompter.RequestChoice("[p]lay round, [s]tatistics or [q]uit?", []string{"p", "s", "q"}, func(choice string) error {
			switch strings.ToLower(strings.TrimSpace(choice)) {
			case "p", "play", "":
				action = "play"
			case "s", "stats", "statistics":
				action = "stats"
			case "q", "quit", "exit":
				action = "quit"
			default:
				return fmt.Errorf("enter 'p' to play, 's' for statistics or 'q' to quit")
			}
			return nil
		})
		if err != nil {
			return ignoreInterrupt(err)
		}

		switch action {
		case "play":
			if err := engine.PlayRound(); err != nil {
				return ignoreInterrupt(err)
			}
		case "stats":
			engine.ShowStats()
		case "quit":
			engine.ShowStats()
			return nil
		}
	}
}

// ignoreInterrupt treats ctrl-c and EOF as a clean exit from the session.
func ignoreInterrupt(err error) error {
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
