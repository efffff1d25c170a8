// Package statistics tracks per-session round outcomes: win/loss/tie
// counters, signed streaks and auxiliary per-game frequency counters.
package statistics

// Outcome is the result of a completed round from the player's perspective.
type Outcome int

const (
	Win Outcome = iota
	Loss
	Tie
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// Tracker accumulates statistics for one game session. Counters are only ever
// incremented, once per completed round. The streak is signed: positive for a
// run of wins, negative for a run of losses, zero at start and after a tie.
// A sign flip jumps straight to magnitude 1 rather than netting out — this is
// the intended rule, not a running win-loss balance.
type Tracker struct {
	rounds int
	wins   int
	losses int
	ties   int

	currentStreak     int
	longestWinStreak  int
	longestLossStreak int

	counters    map[string]int
	wonByMoves  map[int]int
	lostByMoves map[int]int
	totalMoves  int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		counters:    make(map[string]int),
		wonByMoves:  make(map[int]int),
		lostByMoves: make(map[int]int),
	}
}

// Record incorporates one round outcome.
func (t *Tracker) Record(outcome Outcome) {
	t.rounds++
	switch outcome {
	case Win:
		t.wins++
		if t.currentStreak >= 0 {
			t.currentStreak++
		} else {
			t.currentStreak = 1
		}
		t.longestWinStreak = max(t.longestWinStreak, t.currentStreak)
	case Loss:
		t.losses++
		if t.currentStreak <= 0 {
			t.currentStreak--
		} else {
			t.currentStreak = -1
		}
		t.longestLossStreak = max(t.longestLossStreak, -t.currentStreak)
	case Tie:
		t.ties++
		t.currentStreak = 0
	}
}

// Count increments the frequency counter for the given label, keyed by the
// literal value at the moment of recording (e.g. "heads", "you:rock").
func (t *Tracker) Count(label string) {
	t.counters[label]++
}

// RecordMoves adds a completed board game's move count to the totals and to
// the won/lost-in-N-moves histogram for decisive outcomes.
func (t *Tracker) RecordMoves(outcome Outcome, moves int) {
	t.totalMoves += moves
	switch outcome {
	case Win:
		t.wonByMoves[moves]++
	case Loss:
		t.lostByMoves[moves]++
	}
}

// Rounds returns the number of completed rounds.
func (t *Tracker) Rounds() int {
	return t.rounds
}

// CurrentStreak returns the signed streak value.
func (t *Tracker) CurrentStreak() int {
	return t.currentStreak
}

// Snapshot is an immutable copy of the tracker state for rendering.
type Snapshot struct {
	Rounds int
	Wins   int
	Losses int
	Ties   int

	CurrentStreak     int
	LongestWinStreak  int
	LongestLossStreak int

	WinRate float64
	TieRate float64

	Counters     map[string]int
	WonByMoves   map[int]int
	LostByMoves  map[int]int
	TotalMoves   int
	AverageMoves float64
}

// Snapshot returns a copy of the current statistics.
func (t *Tracker) Snapshot() Snapshot {
	s := Snapshot{
		Rounds:            t.rounds,
		Wins:              t.wins,
		Losses:            t.losses,
		Ties:              t.ties,
		CurrentStreak:     t.currentStreak,
		LongestWinStreak:  t.longestWinStreak,
		LongestLossStreak: t.longestLossStreak,
		Counters:          make(map[string]int, len(t.counters)),
		WonByMoves:        make(map[int]int, len(t.wonByMoves)),
		LostByMoves:       make(map[int]int, len(t.lostByMoves)),
		TotalMoves:        t.totalMoves,
	}
	for k, v := range t.counters {
		s.Counters[k] = v
	}
	for k, v := range t.wonByMoves {
		s.WonByMoves[k] = v
	}
	for k, v := range t.lostByMoves {
		s.LostByMoves[k] = v
	}
	if t.rounds > 0 {
		s.WinRate = float64(t.wins) / float64(t.rounds) * 100
		s.TieRate = float64(t.ties) / float64(t.rounds) * 100
		s.AverageMoves = float64(t.totalMoves) / float64(t.rounds)
	}
	return s
}
