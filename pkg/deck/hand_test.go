package deck

import (
	"encoding/json"
	"testing"

	"blackjackdealer-server/internal/rng"

	"github.com/stretchr/testify/assert"
)

func TestHand_Score(t *testing.T) {
	tests := []struct {
		cards   string
		score   int
		soft    bool
		natural bool
	}{
		{"14s,14h,9c", 21, true, false},
		{"14s,14h", 12, true, false},
		{"13s,12h,14c", 21, false, false},
		{"13s,12h,5c", 25, false, false},
		{"14s,13h", 21, true, true},
		{"14s,14h,14c,14d", 14, true, false},
		{"14s,14h,14c,14d,10c,7h", 21, false, false},
		{"10s,6h", 16, false, false},
		{"", 0, false, false},
	}

	for _, test := range tests {
		t.Run(test.cards, func(t *testing.T) {
			a := assert.New(t)
			h := Hand(CardsFromString(test.cards))
			a.Equal(test.score, h.Score())
			a.Equal(test.soft, h.IsSoft())
			a.Equal(test.natural, h.IsNatural())
			a.Equal(test.score > 21, h.IsBust())
		})
	}
}

func TestHand_ScoreIsOrderIndependent(t *testing.T) {
	gen := rng.NewSeeded(7)
	d := NewShuffled(gen)

	for i := 0; i < 200; i++ {
		n := 2 + gen.Intn(5)
		start := gen.Intn(len(d.Cards) - n)
		h := Hand(d.Cards[start : start+n]).Clone()
		expected := h.Score()

		for j := 0; j < 5; j++ {
			for k := len(h) - 1; k > 0; k-- {
				m := gen.Intn(k + 1)
				h[k], h[m] = h[m], h[k]
			}

			assert.Equal(t, expected, h.Score(), "hand %s", h)
		}
	}
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(CardFromString("14s"))
	h.AddCard(CardFromString("3c"))
	assert.Equal(t, "14s,3c", CardsToString(h))
	assert.Equal(t, "14s", CardToString(h.FirstCard()))
	assert.Equal(t, "3c", CardToString(h.LastCard()))
	assert.Equal(t, []string{"Ace of Spades", "3 of Clubs"}, h.Names())

	var empty Hand
	assert.Nil(t, empty.FirstCard())
	assert.Nil(t, empty.LastCard())
}

func TestHand_MarshalJSON(t *testing.T) {
	var h Hand
	b, err := json.Marshal(h)
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	h = Hand{CardFromString("14s"), nil}
	b, err = json.Marshal(h)
	assert.NoError(t, err)
	assert.JSONEq(t, `[{"rank":"ace","suit":"spades","value":11,"image":"ace_of_spades.png"},null]`, string(b))
}
