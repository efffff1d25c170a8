package statistics

import "testing"

func TestRecordCounters(t *testing.T) {
	tracker := NewTracker()

	tracker.Record(Win)
	tracker.Record(Loss)
	tracker.Record(Tie)
	tracker.Record(Win)

	s := tracker.Snapshot()
	if s.Rounds != 4 {
		t.Errorf("Expected 4 rounds, got %d", s.Rounds)
	}
	if s.Wins != 2 || s.Losses != 1 || s.Ties != 1 {
		t.Errorf("Expected 2/1/1, got %d/%d/%d", s.Wins, s.Losses, s.Ties)
	}
	if s.WinRate != 50 {
		t.Errorf("Expected win rate 50, got %f", s.WinRate)
	}
	if s.TieRate != 25 {
		t.Errorf("Expected tie rate 25, got %f", s.TieRate)
	}
}

func TestStreakTransitions(t *testing.T) {
	tracker := NewTracker()

	sequence := []Outcome{Win, Win, Loss, Win, Tie, Loss, Loss, Loss}
	wantStreaks := []int{1, 2, -1, 1, 0, -1, -2, -3}

	for i, outcome := range sequence {
		tracker.Record(outcome)
		if got := tracker.CurrentStreak(); got != wantStreaks[i] {
			t.Errorf("After %d outcomes: streak = %d, want %d", i+1, got, wantStreaks[i])
		}
	}

	s := tracker.Snapshot()
	if s.LongestWinStreak != 2 {
		t.Errorf("Expected longest win streak 2, got %d", s.LongestWinStreak)
	}
	if s.LongestLossStreak != 3 {
		t.Errorf("Expected longest loss streak 3, got %d", s.LongestLossStreak)
	}
}

func TestTieBreaksBothStreaks(t *testing.T) {
	tracker := NewTracker()

	tracker.Record(Win)
	tracker.Record(Tie)
	if tracker.CurrentStreak() != 0 {
		t.Errorf("Tie must reset a win streak, got %d", tracker.CurrentStreak())
	}

	tracker.Record(Loss)
	tracker.Record(Tie)
	if tracker.CurrentStreak() != 0 {
		t.Errorf("Tie must reset a loss streak, got %d", tracker.CurrentStreak())
	}
}

func TestSignFlipJumpsToOne(t *testing.T) {
	tracker := NewTracker()

	tracker.Record(Loss)
	tracker.Record(Loss)
	tracker.Record(Win)
	if tracker.CurrentStreak() != 1 {
		t.Errorf("Win after losses must jump to +1, got %d", tracker.CurrentStreak())
	}

	tracker.Record(Win)
	tracker.Record(Loss)
	if tracker.CurrentStreak() != -1 {
		t.Errorf("Loss after wins must jump to -1, got %d", tracker.CurrentStreak())
	}
}

func TestCountLabels(t *testing.T) {
	tracker := NewTracker()

	tracker.Count("heads")
	tracker.Count("heads")
	tracker.Count("tails")

	s := tracker.Snapshot()
	if s.Counters["heads"] != 2 || s.Counters["tails"] != 1 {
		t.Errorf("Unexpected counters: %v", s.Counters)
	}
}

func TestRecordMoves(t *testing.T) {
	tracker := NewTracker()

	tracker.Record(Win)
	tracker.RecordMoves(Win, 5)
	tracker.Record(Loss)
	tracker.RecordMoves(Loss, 7)
	tracker.Record(Tie)
	tracker.RecordMoves(Tie, 9)

	s := tracker.Snapshot()
	if s.WonByMoves[5] != 1 {
		t.Errorf("Expected one win in 5 moves, got %v", s.WonByMoves)
	}
	if s.LostByMoves[7] != 1 {
		t.Errorf("Expected one loss in 7 moves, got %v", s.LostByMoves)
	}
	if len(s.WonByMoves)+len(s.LostByMoves) != 2 {
		t.Error("Ties must not enter the won/lost histograms")
	}
	if s.TotalMoves != 21 {
		t.Errorf("Expected 21 total moves, got %d", s.TotalMoves)
	}
	if s.AverageMoves != 7 {
		t.Errorf("Expected average 7 moves, got %f", s.AverageMoves)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	tracker := NewTracker()
	tracker.Count("heads")

	s := tracker.Snapshot()
	s.Counters["heads"] = 99

	if tracker.Snapshot().Counters["heads"] != 1 {
		t.Error("Mutating a snapshot must not affect the tracker")
	}
}
