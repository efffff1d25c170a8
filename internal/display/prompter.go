// Package display is the presentation boundary: a readline-based prompter
// that renders session events with lipgloss and feeds validated input back to
// the core. It holds no game state.
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/lox/casino-cli/internal/session"
)

// Prompter implements session.IO on top of a readline instance.
type Prompter struct {
	rl     *readline.Instance
	styles *Styles
	out    io.Writer
}

// NewPrompter creates a prompter reading from the terminal.
func NewPrompter() (*Prompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     "/tmp/casino_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, err
	}
	return &Prompter{
		rl:     rl,
		styles: DefaultStyles(),
		out:    rl.Stdout(),
	}, nil
}

// Close releases the readline instance.
func (p *Prompter) Close() error {
	return p.rl.Close()
}

// RequestWager implements session.IO. It re-prompts until place accepts the
// amount; rejection detail is rendered by the core through WagerRejected.
func (p *Prompter) RequestWager(balance int, place func(amount int) error) error {
	for {
		p.rl.SetPrompt(p.styles.Prompt.Render("Bet amount $"))
		fmt.Fprintf(p.out, "Your balance: %s\n", p.styles.Balance.Render(fmt.Sprintf("$%d", balance)))

		line, err := p.rl.Readline()
		if err != nil {
			return err
		}

		amount, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "$")))
		if err != nil {
			fmt.Fprintln(p.out, p.styles.Error.Render("Please enter a valid number"))
			continue
		}
		if err := place(amount); err != nil {
			continue
		}
		return nil
	}
}

// RequestChoice implements session.IO, re-prompting until apply accepts the
// entered choice.
func (p *Prompter) RequestChoice(prompt string, options []string, apply func(choice string) error) error {
	p.rl.SetPrompt(p.styles.Prompt.Render(prompt + " "))
	defer p.rl.SetPrompt("> ")

	for {
		line, err := p.rl.Readline()
		if err != nil {
			return err
		}
		if err := apply(strings.TrimSpace(line)); err != nil {
			fmt.Fprintln(p.out, p.styles.Error.Render(err.Error()))
			continue
		}
		return nil
	}
}

// Render implements session.IO.
func (p *Prompter) Render(ev session.Event) {
	switch e := ev.(type) {
	case session.RoundStarted:
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, p.styles.Header.Render(fmt.Sprintf(" %s ", e.Variant)))

	case session.WagerPlaced:
		fmt.Fprintf(p.out, "You bet %s\n", p.styles.Balance.Render(fmt.Sprintf("$%d", e.Amount)))

	case session.WagerRejected:
		fmt.Fprintln(p.out, p.styles.Error.Render(rejectionMessage(e.Err)))

	case session.BlackjackDeal:
		fmt.Fprintf(p.out, "Dealer: %s\n", p.renderHand(e.Dealer, e.HideHole))
		fmt.Fprintf(p.out, "You:    %s\n", p.renderHand(e.Player, false))

	case session.CardDrawn:
		fmt.Fprintf(p.out, "%s drew %s → %s\n", e.Who, p.renderCard(e.Card), p.renderHand(e.Hand, false))

	case session.DealerReveal:
		fmt.Fprintf(p.out, "Dealer reveals: %s\n", p.renderHand(e.Dealer, false))

	case session.BoardUpdated:
		fmt.Fprintln(p.out, p.renderBoard(e.Board))

	case session.OpponentMoved:
		fmt.Fprintf(p.out, "Opponent takes position %d\n", e.Position+1)

	case session.CoinFlipped:
		fmt.Fprintf(p.out, "The coin lands on %s\n", p.styles.Warning.Render(e.Side.String()))

	case session.SignsRevealed:
		fmt.Fprintf(p.out, "You chose %s, opponent chose %s\n",
			p.styles.Success.Render(e.Player.String()),
			p.styles.Warning.Render(e.Opponent.String()))

	case session.RoundResolved:
		p.renderResolved(e)

	case session.StatsSnapshot:
		fmt.Fprintln(p.out, p.renderStats(e.Variant, e.Stats))
	}
}

func (p *Prompter) renderResolved(e session.RoundResolved) {
	switch {
	case e.Natural:
		fmt.Fprintln(p.out, p.styles.Success.Render("Blackjack! You win!"))
	case e.Payout > e.Wager:
		fmt.Fprintln(p.out, p.styles.Success.Render("You win!"))
	case e.Payout == e.Wager:
		fmt.Fprintln(p.out, p.styles.Warning.Render("Push. Your bet is returned"))
	default:
		fmt.Fprintln(p.out, p.styles.Error.Render("You lose!"))
	}
	if e.Detail != "" {
		fmt.Fprintln(p.out, p.styles.Info.Render(e.Detail))
	}
	fmt.Fprintf(p.out, "Your balance: %s\n", p.styles.Balance.Render(fmt.Sprintf("$%d", e.Balance)))
}

func rejectionMessage(err error) string {
	if err == nil {
		return "invalid wager"
	}
	return strings.ToUpper(err.Error()[:1]) + err.Error()[1:]
}
