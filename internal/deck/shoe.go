package deck

import (
	rand "math/rand/v2"
)

// Shoe holds a shuffled 52-card sequence that is consumed from the top.
// When the last card has been drawn the shoe refills itself with a freshly
// shuffled full deck before the next draw; a draw never observes a partially
// refilled shoe. A shoe is exclusively owned by one game session.
type Shoe struct {
	cards []Card
	rng   *rand.Rand
}

// NewShoe creates a full, shuffled 52-card shoe using the provided rng.
func NewShoe(rng *rand.Rand) *Shoe {
	s := &Shoe{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	s.refill()
	return s
}

// NewStacked creates a shoe that deals the given cards in order. Refills after
// exhaustion fall back to a deterministically shuffled full deck. Intended for
// scripting exact deals.
func NewStacked(rng *rand.Rand, cards ...Card) *Shoe {
	s := &Shoe{
		cards: make([]Card, 0, len(cards)),
		rng:   rng,
	}
	for i := len(cards) - 1; i >= 0; i-- {
		s.cards = append(s.cards, cards[i])
	}
	return s
}

// Draw removes and returns the next card, refilling the shoe first if it has
// been exhausted.
func (s *Shoe) Draw() Card {
	if len(s.cards) == 0 {
		s.refill()
	}
	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card
}

// Remaining returns the number of cards left before the next refill.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// refill restores a full 52-card deck and shuffles it in place.
func (s *Shoe) refill() {
	s.cards = s.cards[:0]
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			s.cards = append(s.cards, NewCard(suit, rank))
		}
	}
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}
