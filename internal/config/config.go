// Package config loads the casino configuration from an HCL file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// fileConfig is the HCL schema; both blocks are optional.
type fileConfig struct {
	Game    *GameSettings    `hcl:"game,block"`
	Journal *JournalSettings `hcl:"journal,block"`
}

// Config is the complete casino configuration.
type Config struct {
	Game    GameSettings
	Journal JournalSettings
}

// GameSettings contains the rules shared by all game sessions.
type GameSettings struct {
	StartingBalance int     `hcl:"starting_balance,optional"`
	DealerStandsOn  int     `hcl:"dealer_stands_on,optional"`
	BlackjackPayout float64 `hcl:"blackjack_payout,optional"`
	BoardSize       int     `hcl:"board_size,optional"`
}

// JournalSettings controls the structured round journal.
type JournalSettings struct {
	Path string `hcl:"path,optional"`
}

// Env holds environment variable overrides applied on top of the file.
type Env struct {
	ConfigPath      string `env:"CASINO_CONFIG"`
	Seed            int64  `env:"CASINO_SEED"`
	StartingBalance int    `env:"CASINO_BALANCE"`
	JournalPath     string `env:"CASINO_JOURNAL"`
}

// Default returns the default configuration: $10,000 starting balance,
// dealer stands on 17, blackjack pays 3:2, 3x3 board.
func Default() *Config {
	return &Config{
		Game: GameSettings{
			StartingBalance: 10000,
			DealerStandsOn:  17,
			BlackjackPayout: 1.5,
			BoardSize:       3,
		},
	}
}

// Load reads the configuration file at filename, falling back to defaults if
// the file does not exist, then applies environment overrides.
func Load(filename string) (*Config, error) {
	cfg, err := loadFile(filename)
	if err != nil {
		return nil, err
	}

	e, err := EnvOverrides()
	if err != nil {
		return nil, err
	}
	if e.StartingBalance > 0 {
		cfg.Game.StartingBalance = e.StartingBalance
	}
	if e.JournalPath != "" {
		cfg.Journal.Path = e.JournalPath
	}

	return cfg, cfg.Validate()
}

// EnvOverrides parses the environment variable overrides.
func EnvOverrides() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}

func loadFile(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return parse(src, filename)
}

// Parse decodes configuration from HCL source with defaults applied.
func Parse(src []byte, filename string) (*Config, error) {
	cfg, err := parse(src, filename)
	if err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if fc.Game != nil {
		if fc.Game.StartingBalance > 0 {
			cfg.Game.StartingBalance = fc.Game.StartingBalance
		}
		if fc.Game.DealerStandsOn > 0 {
			cfg.Game.DealerStandsOn = fc.Game.DealerStandsOn
		}
		if fc.Game.BlackjackPayout > 0 {
			cfg.Game.BlackjackPayout = fc.Game.BlackjackPayout
		}
		if fc.Game.BoardSize > 0 {
			cfg.Game.BoardSize = fc.Game.BoardSize
		}
	}
	if fc.Journal != nil {
		cfg.Journal.Path = fc.Journal.Path
	}
	return cfg, nil
}

// Validate checks the configuration for out-of-domain values.
func (c *Config) Validate() error {
	if c.Game.StartingBalance <= 0 {
		return fmt.Errorf("starting_balance must be positive, got %d", c.Game.StartingBalance)
	}
	if c.Game.DealerStandsOn < 2 || c.Game.DealerStandsOn > 21 {
		return fmt.Errorf("dealer_stands_on must be between 2 and 21, got %d", c.Game.DealerStandsOn)
	}
	if c.Game.BlackjackPayout < 1 {
		return fmt.Errorf("blackjack_payout must be at least 1, got %g", c.Game.BlackjackPayout)
	}
	if c.Game.BoardSize != 3 && c.Game.BoardSize != 4 {
		return fmt.Errorf("board_size must be 3 or 4, got %d", c.Game.BoardSize)
	}
	return nil
}
