package simulate

import (
	"errors"
	"io"
	rand "math/rand/v2"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/casino-cli/internal/randutil"
	"github.com/lox/casino-cli/internal/session"
)

func testConfig(sessions, rounds int) Config {
	return Config{
		Sessions:    sessions,
		Rounds:      rounds,
		Wager:       100,
		Balance:     1000,
		Seed:        7,
		Parallelism: 2,
		NewVariant: func(rng *rand.Rand) session.Variant {
			return session.NewCoinFlip(rng)
		},
		Logger: log.New(io.Discard),
	}
}

func TestRunCoinFlipSessions(t *testing.T) {
	report, err := New(testConfig(4, 25)).Run()
	require.NoError(t, err)

	require.Equal(t, "coinflip", report.Variant)
	require.Len(t, report.Sessions, 4)
	require.LessOrEqual(t, report.TotalRounds(), 100)
	require.GreaterOrEqual(t, report.WinRate(), 0.0)
	require.LessOrEqual(t, report.WinRate(), 1.0)
	require.GreaterOrEqual(t, report.MeanFinalBalance(), 0.0)

	for i, s := range report.Sessions {
		require.Equal(t, i, s.Session)
		require.Equal(t, int64(7+i), s.Seed)
		require.LessOrEqual(t, s.Rounds, 25)
		require.Equal(t, s.Rounds, s.Stats.Rounds)
		require.GreaterOrEqual(t, s.FinalBalance, 0)
		require.Equal(t, s.FinalBalance == 0, s.Busted)
		if !s.Busted {
			require.Equal(t, 25, s.Rounds)
		}
	}

	busts := 0
	for _, s := range report.Sessions {
		if s.Busted {
			busts++
		}
	}
	require.Equal(t, busts, report.Busts())
}

func TestRunIsDeterministic(t *testing.T) {
	first, err := New(testConfig(3, 20)).Run()
	require.NoError(t, err)
	second, err := New(testConfig(3, 20)).Run()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRunValidatesConfig(t *testing.T) {
	cfg := testConfig(0, 10)
	_, err := New(cfg).Run()
	require.Error(t, err)

	cfg = testConfig(1, 10)
	cfg.Wager = 0
	_, err = New(cfg).Run()
	require.Error(t, err)
}

func TestAutoIOCapsWagerAtBalance(t *testing.T) {
	auto := NewAutoIO(randutil.New(1), 100)

	var placed int
	err := auto.RequestWager(50, func(amount int) error {
		placed = amount
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 50, placed)
}

func TestAutoIOSkipsRejectedOptions(t *testing.T) {
	auto := NewAutoIO(randutil.New(1), 100)

	var chosen string
	err := auto.RequestChoice("pick", []string{"a", "b", "c"}, func(choice string) error {
		if choice != "b" {
			return errors.New("taken")
		}
		chosen = choice
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, "b", chosen)
}

func TestAutoIOErrorsWhenAllOptionsRejected(t *testing.T) {
	auto := NewAutoIO(randutil.New(1), 100)

	rejected := errors.New("taken")
	err := auto.RequestChoice("pick", []string{"a", "b"}, func(choice string) error {
		return rejected
	})
	require.ErrorIs(t, err, rejected)
}
