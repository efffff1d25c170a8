package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFullConfig(t *testing.T) {
	src := []byte(`
game {
  starting_balance = 5000
  dealer_stands_on = 16
  blackjack_payout = 2.0
  board_size       = 4
}

journal {
  path = "rounds.log"
}
`)

	cfg, err := Parse(src, "casino.hcl")
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Game.StartingBalance)
	assert.Equal(t, 16, cfg.Game.DealerStandsOn)
	assert.Equal(t, 2.0, cfg.Game.BlackjackPayout)
	assert.Equal(t, 4, cfg.Game.BoardSize)
	assert.Equal(t, "rounds.log", cfg.Journal.Path)
}

func TestParsePartialConfigKeepsDefaults(t *testing.T) {
	src := []byte(`
game {
  starting_balance = 2500
}
`)

	cfg, err := Parse(src, "casino.hcl")
	require.NoError(t, err)

	assert.Equal(t, 2500, cfg.Game.StartingBalance)
	assert.Equal(t, 17, cfg.Game.DealerStandsOn)
	assert.Equal(t, 1.5, cfg.Game.BlackjackPayout)
	assert.Equal(t, 3, cfg.Game.BoardSize)
	assert.Empty(t, cfg.Journal.Path)
}

func TestParseEmptyConfig(t *testing.T) {
	cfg, err := Parse([]byte(""), "casino.hcl")
	require.NoError(t, err)
	assert.Equal(t, Default().Game, cfg.Game)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	_, err := Parse([]byte("game {\n  board_size = 5\n}\n"), "casino.hcl")
	assert.Error(t, err)

	_, err = Parse([]byte("game {\n  dealer_stands_on = 25\n}\n"), "casino.hcl")
	assert.Error(t, err)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir() + "/does-not-exist.hcl")
	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.Game.StartingBalance)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CASINO_BALANCE", "777")
	t.Setenv("CASINO_SEED", "42")
	t.Setenv("CASINO_JOURNAL", "env.log")

	cfg, err := Load(t.TempDir() + "/does-not-exist.hcl")
	require.NoError(t, err)
	assert.Equal(t, 777, cfg.Game.StartingBalance)
	assert.Equal(t, "env.log", cfg.Journal.Path)

	e, err := EnvOverrides()
	require.NoError(t, err)
	assert.Equal(t, int64(42), e.Seed)
}
