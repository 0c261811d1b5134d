package deck

import "encoding/json"

// Blackjack is the best possible hand total
const Blackjack = 21

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// Score returns the best blackjack total for the hand.
// Aces count as 11 and are softened to 1, one at a time, while the hand would otherwise bust.
func (h Hand) Score() int {
	score, _ := h.score()
	return score
}

// IsSoft returns true if at least one ace is still counted as 11
func (h Hand) IsSoft() bool {
	_, softAces := h.score()
	return softAces > 0
}

// IsNatural returns true for a two-card 21
func (h Hand) IsNatural() bool {
	return len(h) == 2 && h.Score() == Blackjack
}

// IsBust returns true if the hand is over 21
func (h Hand) IsBust() bool {
	return h.Score() > Blackjack
}

func (h Hand) score() (score int, softAces int) {
	for _, card := range h {
		score += card.Value
		if card.IsAce() {
			softAces++
		}
	}

	for score > Blackjack && softAces > 0 {
		score -= 10
		softAces--
	}

	return score, softAces
}

// FirstCard returns the first card in the hand or nil if the cards are empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

// LastCard returns the last card in the hand or nil if the cards are empty
func (h Hand) LastCard() *Card {
	n := len(h)
	if n == 0 {
		return nil
	}

	return h[n-1]
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Names returns the spoken names of each card
func (h Hand) Names() []string {
	names := make([]string, len(h))
	for i, card := range h {
		names[i] = card.Name()
	}

	return names
}

// Clone returns a deep copy of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	for i, card := range h {
		h2[i] = card.Clone()
	}

	return h2
}

// MarshalJSON encodes an empty hand as [] rather than null
func (h Hand) MarshalJSON() ([]byte, error) {
	if h == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]*Card(h))
}
