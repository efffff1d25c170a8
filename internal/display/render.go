package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lox/casino-cli/internal/blackjack"
	"github.com/lox/casino-cli/internal/board"
	"github.com/lox/casino-cli/internal/deck"
	"github.com/lox/casino-cli/internal/statistics"
)

// renderCard returns a styled single card.
func (p *Prompter) renderCard(c deck.Card) string {
	if c.IsRed() {
		return p.styles.RedCard.Render(c.String())
	}
	return p.styles.BlackCard.Render(c.String())
}

// renderHand returns a styled hand with its computed value, e.g.
// "A♠ K♥ (21)". With hideHole set, the first card is masked and no value is
// shown.
func (p *Prompter) renderHand(h *blackjack.Hand, hideHole bool) string {
	cards := h.Cards()
	parts := make([]string, 0, len(cards)+1)
	for i, c := range cards {
		if hideHole && i == 0 {
			parts = append(parts, p.styles.Info.Render("[??]"))
			continue
		}
		parts = append(parts, p.renderCard(c))
	}
	if !hideHole {
		parts = append(parts, p.styles.Info.Render(fmt.Sprintf("(%d)", h.Value())))
	}
	return strings.Join(parts, " ")
}

// renderBoard returns the board grid alongside a position guide.
func (p *Prompter) renderBoard(b *board.Board) string {
	n := b.Size()
	width := len(fmt.Sprint(n * n))

	var sb strings.Builder
	divider := strings.Repeat("-", (width+2)*n+n-1)

	for row := 0; row < n; row++ {
		marks := make([]string, n)
		guide := make([]string, n)
		for col := 0; col < n; col++ {
			pos := row*n + col
			mark := b.Cell(pos)
			marks[col] = fmt.Sprintf(" %*s ", width, mark.String())
			guide[col] = fmt.Sprintf(" %*d ", width, pos+1)
		}
		sb.WriteString(strings.Join(marks, "|"))
		sb.WriteString(p.styles.Info.Render("    " + strings.Join(guide, " ")))
		sb.WriteString("\n")
		if row < n-1 {
			sb.WriteString(divider)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// renderStats returns the formatted statistics snapshot.
func (p *Prompter) renderStats(variant string, s statistics.Snapshot) string {
	var sb strings.Builder

	sb.WriteString(p.styles.Header.Render(fmt.Sprintf(" %s statistics ", variant)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Rounds: %d  Wins: %d  Losses: %d  Ties: %d\n", s.Rounds, s.Wins, s.Losses, s.Ties))

	if s.Rounds > 0 {
		sb.WriteString(fmt.Sprintf("Win rate: %.1f%%", s.WinRate))
		if s.Ties > 0 {
			sb.WriteString(fmt.Sprintf("  Tie rate: %.1f%%", s.TieRate))
		}
		sb.WriteString("\n")
	}

	switch {
	case s.CurrentStreak > 0:
		sb.WriteString(fmt.Sprintf("Current streak: %d wins\n", s.CurrentStreak))
	case s.CurrentStreak < 0:
		sb.WriteString(fmt.Sprintf("Current streak: %d losses\n", -s.CurrentStreak))
	default:
		sb.WriteString("Current streak: none\n")
	}
	sb.WriteString(fmt.Sprintf("Longest win streak: %d  Longest loss streak: %d\n", s.LongestWinStreak, s.LongestLossStreak))

	if len(s.Counters) > 0 {
		labels := make([]string, 0, len(s.Counters))
		for label := range s.Counters {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			sb.WriteString(fmt.Sprintf("  %s: %d\n", label, s.Counters[label]))
		}
	}

	if s.TotalMoves > 0 {
		sb.WriteString(fmt.Sprintf("Average moves per game: %.1f\n", s.AverageMoves))
		sb.WriteString(renderHistogram("Games won by move count", s.WonByMoves))
		sb.WriteString(renderHistogram("Games lost by move count", s.LostByMoves))
	}

	return sb.String()
}

func renderHistogram(title string, hist map[int]int) string {
	if len(hist) == 0 {
		return ""
	}
	moves := make([]int, 0, len(hist))
	for m := range hist {
		moves = append(moves, m)
	}
	sort.Ints(moves)

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString(":\n")
	for _, m := range moves {
		sb.WriteString(fmt.Sprintf("  %d moves: %d games\n", m, hist[m]))
	}
	return sb.String()
}
