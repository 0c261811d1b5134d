package blackjack

import (
	"io"
	"testing"

	"blackjackdealer-server/internal/rng"
	"blackjackdealer-server/pkg/deck"
	"blackjackdealer-server/pkg/playable"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestEngine(t *testing.T, modifiers ...func(*Options)) *Engine {
	t.Helper()

	options := DefaultOptions()
	for _, modify := range modifiers {
		modify(&options)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	e, err := NewEngine(logger, rng.NewSeeded(1), options)
	if err != nil {
		t.Fatal(err)
	}

	return e
}

// stackDeck returns a full deck where the listed cards are drawn first, in order
func stackDeck(cards string) *deck.Deck {
	top := deck.CardsFromString(cards)
	onTop := make(map[string]bool, len(top))
	for _, card := range top {
		onTop[card.String()] = true
	}

	rest := make([]*deck.Card, 0, deck.Size)
	for _, card := range deck.New().Cards {
		if !onTop[card.String()] {
			rest = append(rest, card)
		}
	}

	for i := len(top) - 1; i >= 0; i-- {
		rest = append(rest, top[i])
	}

	return &deck.Deck{Cards: rest}
}

// stateWithDeck returns a fresh game whose deck deals the listed cards first
func stateWithDeck(cards string) *GameState {
	s := NewGameState(DefaultOptions())
	s.Deck = stackDeck(cards)
	return s
}

func apply(t *testing.T, e *Engine, s *GameState, action string, keyvals ...interface{}) *Result {
	t.Helper()

	res, err := e.Apply(s, playable.NewPayload(action, keyvals...))
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	return res
}

// dealt places a bet of 25 against the stacked deck and asserts the hand is in play
func dealt(t *testing.T, e *Engine, cards string) *GameState {
	t.Helper()

	res := apply(t, e, stateWithDeck(cards), "place_bet", "amount", 25)
	if !assert.False(t, res.Rejected, res.Message) || !assert.True(t, res.State.HandInProgress) {
		t.FailNow()
	}

	return res.State
}

func eventTypes(events []Event) []EventType {
	types := make([]EventType, len(events))
	for i, event := range events {
		types[i] = event.EventType()
	}

	return types
}

func stepPtr(s Step) *Step {
	return &s
}
