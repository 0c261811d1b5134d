package deck

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank_Value(t *testing.T) {
	a := assert.New(t)
	a.Equal(2, Two.Value())
	a.Equal(9, Nine.Value())
	a.Equal(10, Ten.Value())
	a.Equal(10, Jack.Value())
	a.Equal(10, Queen.Value())
	a.Equal(10, King.Value())
	a.Equal(11, Ace.Value())
	a.Equal(0, Rank("1").Value())
	a.Equal(0, Rank("joker").Value())
}

func TestNewCard(t *testing.T) {
	card := NewCard(Queen, Hearts)
	assert.Equal(t, Card{Rank: Queen, Suit: Hearts, Value: 10, Image: "queen_of_hearts.png"}, *card)
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("2♡", NewCard(Two, Hearts).String())
	a.Equal("10♣", NewCard(Ten, Clubs).String())
	a.Equal("J♣", NewCard(Jack, Clubs).String())
	a.Equal("Q♢", NewCard(Queen, Diamonds).String())
	a.Equal("K♠", NewCard(King, Spades).String())
	a.Equal("A♠", NewCard(Ace, Spades).String())
}

func TestCard_Name(t *testing.T) {
	assert.Equal(t, "Ace of Spades", NewCard(Ace, Spades).Name())
	assert.Equal(t, "10 of Diamonds", NewCard(Ten, Diamonds).Name())
}

func TestCard_Validate(t *testing.T) {
	a := assert.New(t)
	a.NoError(NewCard(Ace, Spades).Validate())

	var nilCard *Card
	a.True(errors.Is(nilCard.Validate(), ErrInvalidCard))
	a.EqualError((&Card{Rank: "11", Suit: Spades, Value: 11}).Validate(), `invalid card: unknown rank "11"`)
	a.EqualError((&Card{Rank: Ace, Suit: "stars", Value: 11}).Validate(), `invalid card: unknown suit "stars"`)
	a.EqualError((&Card{Rank: Ace, Suit: Spades, Value: 1}).Validate(), "invalid card: Ace of Spades has value 1, expected 11")
}

func TestCard_JSON(t *testing.T) {
	a := assert.New(t)
	b, err := json.Marshal(NewCard(King, Clubs))
	a.NoError(err)
	a.JSONEq(`{"rank":"king","suit":"clubs","value":10,"image":"king_of_clubs.png"}`, string(b))

	var card Card
	a.NoError(json.Unmarshal([]byte(`{"rank":"7","suit":"hearts","value":7}`), &card))
	a.NoError(card.Validate())
	a.Equal("", card.Image)
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)
	a.Equal(NewCard(Ace, Spades), CardFromString("14s"))
	a.Equal(NewCard(Jack, Hearts), CardFromString("11h"))
	a.Equal(NewCard(Ten, Diamonds), CardFromString("10d"))
	a.Nil(CardFromString(""))
	a.Panics(func() { CardFromString("1s") })
	a.Panics(func() { CardFromString("15s") })

	cards := CardsFromString("2c,13h,14d")
	a.Equal(3, len(cards))
	a.Equal("2c,13h,14d", CardsToString(cards))
}
