// Package blackjack implements blackjack hand evaluation: soft/hard ace
// reduction, bust detection and naturals.
package blackjack

import (
	"strings"

	"github.com/lox/casino-cli/internal/deck"
)

// Target is the hand value a blackjack hand aims for.
const Target = 21

// Hand is an ordered sequence of cards held by one party for a single round.
type Hand struct {
	cards []deck.Card
}

// Add appends a drawn card to the hand.
func (h *Hand) Add(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns the cards in deal order.
func (h *Hand) Cards() []deck.Card {
	return h.cards
}

// Len returns the number of cards in the hand.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Reset empties the hand for a new round.
func (h *Hand) Reset() {
	h.cards = h.cards[:0]
}

// Value computes the blackjack value of the hand. Aces count 11 until the
// total exceeds 21, then one ace at a time drops to 1 until the total fits or
// no high aces remain.
func (h *Hand) Value() int {
	value := 0
	aces := 0
	for _, card := range h.cards {
		if card.IsAce() {
			aces++
		}
		value += card.Value()
	}

	for value > Target && aces > 0 {
		value -= 10
		aces--
	}

	return value
}

// IsBust returns true if the hand value exceeds 21 after ace reduction.
func (h *Hand) IsBust() bool {
	return h.Value() > Target
}

// IsNatural returns true for a two-card 21.
func (h *Hand) IsNatural() bool {
	return len(h.cards) == 2 && h.Value() == Target
}

// String returns the hand as space-separated cards (e.g., "A♠ K♥")
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, card := range h.cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}
