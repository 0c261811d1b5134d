package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card does not describe one of the 52 standard cards
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits is every suit in deck-building order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Rank is the rank of a card as it appears in a snapshot
type Rank string

// rank constants
const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "jack"
	Queen Rank = "queen"
	King  Rank = "king"
	Ace   Rank = "ace"
)

// Ranks is every rank in deck-building order
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Value returns the blackjack value of the rank. An ace is 11 until a hand softens it.
// Zero is returned for an unknown rank.
func (r Rank) Value() int {
	switch r {
	case Jack, Queen, King:
		return 10
	case Ace:
		return 11
	}

	n, err := strconv.Atoi(string(r))
	if err != nil || n < 2 || n > 10 {
		return 0
	}

	return n
}

// Card is an individual playing card
type Card struct {
	Rank  Rank   `json:"rank"`
	Suit  Suit   `json:"suit"`
	Value int    `json:"value"`
	Image string `json:"image,omitempty"`
}

// NewCard returns a card with its value and display image filled in
func NewCard(rank Rank, suit Suit) *Card {
	return &Card{
		Rank:  rank,
		Suit:  suit,
		Value: rank.Value(),
		Image: fmt.Sprintf("%s_of_%s.png", rank, suit),
	}
}

// Validate ensures the card is one of the standard 52 and that its value agrees with its rank
func (c *Card) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: missing card", ErrInvalidCard)
	}

	switch c.Suit {
	case Hearts, Diamonds, Clubs, Spades:
	default:
		return fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, c.Suit)
	}

	value := c.Rank.Value()
	if value == 0 {
		return fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, c.Rank)
	}

	if c.Value != value {
		return fmt.Errorf("%w: %s has value %d, expected %d", ErrInvalidCard, c.Name(), c.Value, value)
	}

	return nil
}

// IsAce returns true if the card is an ace
func (c *Card) IsAce() bool {
	return c.Rank == Ace
}

func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = string(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// Name returns the spoken name of the card, e.g., "Queen of Hearts"
func (c *Card) Name() string {
	return fmt.Sprintf("%s of %s", capitalize(string(c.Rank)), capitalize(string(c.Suit)))
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Clone returns a copy of the card
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs].
// 11 through 14 are jack, queen, king and ace.
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	n, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var rank Rank
	switch n {
	case 11:
		rank = Jack
	case 12:
		rank = Queen
	case 13:
		rank = King
	case 14:
		rank = Ace
	default:
		rank = Rank(strconv.Itoa(n))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return NewCard(rank, suit)
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var rank string
	switch card.Rank {
	case Jack:
		rank = "11"
	case Queen:
		rank = "12"
	case King:
		rank = "13"
	case Ace:
		rank = "14"
	default:
		rank = string(card.Rank)
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return rank + suit
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
