package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"encoding/json"
	"errors"

	"blackjackdealer-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Size is the number of cards in a fresh deck
const Size = 52

// Deck represents a playing deck. Cards are drawn from the end of the slice.
type Deck struct {
	Cards []*Card
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

// NewShuffled returns a fresh deck shuffled with the provided generator
func NewShuffled(gen rng.Generator) *Deck {
	d := New()
	d.Shuffle(gen)
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(rank, suit))
		}
	}

	d.Cards = cards
}

// Shuffle performs a Fisher-Yates shuffle of the remaining cards
func (d *Deck) Shuffle(gen rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw removes and returns the last card of the deck
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	n := len(d.Cards)
	if n <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[n-1]
	d.Cards = d.Cards[:n-1]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// Clone returns a deep copy of the deck
func (d *Deck) Clone() *Deck {
	cards := make([]*Card, len(d.Cards))
	for i, card := range d.Cards {
		cards[i] = card.Clone()
	}

	return &Deck{Cards: cards}
}

// MarshalJSON encodes the deck as a bare array of cards
func (d *Deck) MarshalJSON() ([]byte, error) {
	if d.Cards == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(d.Cards)
}

// UnmarshalJSON decodes a bare array of cards
func (d *Deck) UnmarshalJSON(b []byte) error {
	var cards []*Card
	if err := json.Unmarshal(b, &cards); err != nil {
		return err
	}

	if cards == nil {
		cards = []*Card{}
	}

	d.Cards = cards
	return nil
}
