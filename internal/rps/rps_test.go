package rps

import (
	"testing"

	"github.com/lox/casino-cli/internal/randutil"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		player   Sign
		opponent Sign
		want     Result
	}{
		{Rock, Scissors, PlayerWins},
		{Paper, Rock, PlayerWins},
		{Scissors, Paper, PlayerWins},
		{Scissors, Rock, OpponentWins},
		{Rock, Paper, OpponentWins},
		{Paper, Scissors, OpponentWins},
		{Rock, Rock, Draw},
		{Paper, Paper, Draw},
		{Scissors, Scissors, Draw},
	}

	for _, tt := range tests {
		if got := Resolve(tt.player, tt.opponent); got != tt.want {
			t.Errorf("Resolve(%s, %s) = %v, want %v", tt.player, tt.opponent, got, tt.want)
		}
	}
}

func TestRandomCoversAllSigns(t *testing.T) {
	rng := randutil.New(7)
	seen := make(map[Sign]int)
	for i := 0; i < 100; i++ {
		seen[Random(rng)]++
	}
	for _, sign := range Signs {
		if seen[sign] == 0 {
			t.Errorf("Expected %s in 100 random draws", sign)
		}
	}
}
