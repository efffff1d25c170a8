package main

import (
	rand "math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/casino-cli/internal/config"
	"github.com/lox/casino-cli/internal/deck"
	"github.com/lox/casino-cli/internal/journal"
	"github.com/lox/casino-cli/internal/session"
)

// runContext carries resolved configuration into every subcommand via kong
// bindings.
type runContext struct {
	cfg     *config.Config
	logger  *log.Logger
	seed    int64
	journal *journal.Journal
}

// newRunContext resolves configuration with CLI flags taking precedence over
// environment variables, which take precedence over the config file.
func newRunContext(cli *CLI) (*runContext, error) {
	level := log.InfoLevel
	if cli.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	envOverrides, err := config.EnvOverrides()
	if err != nil {
		return nil, err
	}

	path := cli.Config
	if envOverrides.ConfigPath != "" {
		path = envOverrides.ConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cli.Journal != "" {
		cfg.Journal.Path = cli.Journal
	}

	seed := cli.Seed
	if seed == 0 {
		seed = envOverrides.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("Resolved configuration", "config", path, "seed", seed)

	j := journal.Discard()
	if cfg.Journal.Path != "" {
		j, err = journal.Open(cfg.Journal.Path)
		if err != nil {
			return nil, err
		}
		logger.Debug("Journaling rounds", "path", cfg.Journal.Path)
	}

	return &runContext{
		cfg:     cfg,
		logger:  logger,
		seed:    seed,
		journal: j,
	}, nil
}

// Close flushes the round journal.
func (r *runContext) Close() error {
	return r.journal.Close()
}

// buildVariant returns a factory producing a fresh variant from an injected
// RNG. Callers own the RNG so simulated sessions stay independent.
func (r *runContext) buildVariant(name string) func(rng *rand.Rand) session.Variant {
	game := r.cfg.Game
	switch name {
	case "blackjack":
		return func(rng *rand.Rand) session.Variant {
			return session.NewBlackjack(deck.NewShoe(rng), game.DealerStandsOn, game.BlackjackPayout)
		}
	case "coinflip":
		return func(rng *rand.Rand) session.Variant {
			return session.NewCoinFlip(rng)
		}
	case "rps":
		return func(rng *rand.Rand) session.Variant {
			return session.NewRPS(rng)
		}
	case "tictactoe":
		return func(rng *rand.Rand) session.Variant {
			return session.NewTicTacToe(game.BoardSize, rng)
		}
	default:
		r.logger.Fatal("Unknown game", "game", name)
		return nil
	}
}
