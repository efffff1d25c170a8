package session

import (
	"fmt"
	"strings"

	"github.com/lox/casino-cli/internal/blackjack"
	"github.com/lox/casino-cli/internal/deck"
	"github.com/lox/casino-cli/internal/statistics"
	"github.com/lox/casino-cli/internal/wager"
)

// Blackjack is the card variant: hit/stand against a dealer who draws to a
// fixed threshold. A natural (two-card 21) pays 3:2.
type Blackjack struct {
	shoe     *deck.Shoe
	standsOn int
	payout   float64
	player   blackjack.Hand
	dealer   blackjack.Hand
}

// NewBlackjack creates the blackjack variant. The dealer draws while their
// hand value is below standsOn; a natural win pays the given multiplier.
func NewBlackjack(shoe *deck.Shoe, standsOn int, payout float64) *Blackjack {
	return &Blackjack{
		shoe:     shoe,
		standsOn: standsOn,
		payout:   payout,
	}
}

// Name implements Variant.
func (b *Blackjack) Name() string {
	return "blackjack"
}

// Reset implements Variant.
func (b *Blackjack) Reset() {
	b.player.Reset()
	b.dealer.Reset()
}

// Play deals two cards each, alternating player/dealer, runs the player's
// hit/stand loop and then the dealer's forced draws.
func (b *Blackjack) Play(io IO) (RawResult, error) {
	b.player.Add(b.shoe.Draw())
	b.dealer.Add(b.shoe.Draw())
	b.player.Add(b.shoe.Draw())
	b.dealer.Add(b.shoe.Draw())

	io.Render(BlackjackDeal{Player: &b.player, Dealer: &b.dealer, HideHole: true})

	if err := b.playerTurn(io); err != nil {
		return RawResult{}, err
	}

	if !b.player.IsBust() {
		b.dealerTurn(io)
	}

	return b.result(), nil
}

// playerTurn loops hit/stand until the player stands, busts or holds a
// natural.
func (b *Blackjack) playerTurn(io IO) error {
	for !b.player.IsBust() && !b.player.IsNatural() {
		var hit bool
		err := io.RequestChoice("Hit (h) or Stand (s)?", []string{"h", "s"}, func(choice string) error {
			switch strings.ToLower(strings.TrimSpace(choice)) {
			case "h", "hit":
				hit = true
			case "s", "stand":
				hit = false
			default:
				return fmt.Errorf("enter 'h' to hit or 's' to stand")
			}
			return nil
		})
		if err != nil {
			return err
		}
		if !hit {
			return nil
		}

		card := b.shoe.Draw()
		b.player.Add(card)
		io.Render(CardDrawn{Who: "You", Card: card, Hand: &b.player})
	}
	return nil
}

// dealerTurn reveals the hole card and draws until the stand threshold.
func (b *Blackjack) dealerTurn(io IO) {
	io.Render(DealerReveal{Dealer: &b.dealer})
	for b.dealer.Value() < b.standsOn {
		card := b.shoe.Draw()
		b.dealer.Add(card)
		io.Render(CardDrawn{Who: "Dealer", Card: card, Hand: &b.dealer})
	}
}

// result maps the final hands to a round outcome.
func (b *Blackjack) result() RawResult {
	playerValue, dealerValue := b.player.Value(), b.dealer.Value()

	switch {
	case b.player.IsBust():
		return RawResult{Outcome: statistics.Loss, Detail: fmt.Sprintf("bust with %d", playerValue)}
	case b.dealer.IsBust():
		return RawResult{Outcome: statistics.Win, Detail: fmt.Sprintf("dealer busts with %d", dealerValue)}
	case b.player.IsNatural() && !b.dealer.IsNatural():
		return RawResult{Outcome: statistics.Win, Natural: true, Detail: "blackjack"}
	case b.dealer.IsNatural() && !b.player.IsNatural():
		return RawResult{Outcome: statistics.Loss, Detail: "dealer blackjack"}
	case playerValue > dealerValue:
		return RawResult{Outcome: statistics.Win, Detail: fmt.Sprintf("%d beats %d", playerValue, dealerValue)}
	case dealerValue > playerValue:
		return RawResult{Outcome: statistics.Loss, Detail: fmt.Sprintf("%d loses to %d", playerValue, dealerValue)}
	default:
		return RawResult{Outcome: statistics.Tie, Detail: fmt.Sprintf("push at %d", playerValue)}
	}
}

// Settlement implements Variant. A natural win pays the configured multiplier
// (3:2 by default), any other win pays even money.
func (b *Blackjack) Settlement(r RawResult) (wager.Outcome, float64) {
	switch r.Outcome {
	case statistics.Win:
		if r.Natural {
			return wager.Win, b.payout
		}
		return wager.Win, 1.0
	case statistics.Tie:
		return wager.Push, 0
	default:
		return wager.Loss, 0
	}
}
