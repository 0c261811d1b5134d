package blackjack

import (
	"bytes"
	"encoding/json"
	"fmt"

	"blackjackdealer-server/pkg/deck"
)

// Phase is the engine's own view of where a hand is
type Phase string

// Phase constants
const (
	// PhaseWaiting means no hand is in progress
	PhaseWaiting Phase = "waiting"

	// PhaseBetPlaced means a bet has been taken but the cards are not dealt
	PhaseBetPlaced Phase = "bet_placed"

	// PhasePlaying means the cards are dealt and the player is acting
	PhasePlaying Phase = "playing"
)

// Step is the externally observed conversation step
type Step string

// Step constants
const (
	StepBetting      Step = "betting"
	StepPlaying      Step = "playing"
	StepHandComplete Step = "hand_complete"
	StepGameOver     Step = "game_over"
)

// GameState is the full snapshot of a game. The caller persists it between actions.
type GameState struct {
	Deck           *deck.Deck `json:"deck"`
	PlayerHand     deck.Hand  `json:"player_hand"`
	DealerHand     deck.Hand  `json:"dealer_hand"`
	PlayerScore    int        `json:"player_score"`
	DealerScore    int        `json:"dealer_score"`
	CurrentBet     int        `json:"current_bet"`
	PlayerChips    int        `json:"player_chips"`
	Phase          Phase      `json:"game_phase"`
	HandInProgress bool       `json:"hand_in_progress"`
}

// NewGameState returns the state of a game that has not been played yet
func NewGameState(options Options) *GameState {
	return &GameState{
		Deck:        &deck.Deck{Cards: []*deck.Card{}},
		PlayerHand:  deck.Hand{},
		DealerHand:  deck.Hand{},
		PlayerChips: options.StartingChips,
		Phase:       PhaseWaiting,
	}
}

var requiredFields = []string{
	"deck",
	"player_hand",
	"dealer_hand",
	"player_score",
	"dealer_score",
	"current_bet",
	"player_chips",
	"game_phase",
	"hand_in_progress",
}

// ParseGameState decodes and validates a snapshot.
// An empty or null snapshot returns a nil state and no error, meaning no game exists yet.
func ParseGameState(b []byte) (*GameState, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	for _, field := range requiredFields {
		if _, ok := fields[field]; !ok {
			return nil, fmt.Errorf("%w: missing field %s", ErrCorruptState, field)
		}
	}

	var state GameState
	if err := json.Unmarshal(b, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	if err := state.Validate(); err != nil {
		return nil, err
	}

	return &state, nil
}

func corrupt(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrCorruptState, fmt.Sprintf(format, a...))
}

// Validate checks the structural invariants of the snapshot
func (s *GameState) Validate() error {
	if s.Deck == nil {
		return corrupt("missing deck")
	}

	if s.PlayerChips < 0 {
		return corrupt("player_chips cannot be negative")
	}

	if s.CurrentBet < 0 {
		return corrupt("current_bet cannot be negative")
	}

	switch s.Phase {
	case PhaseWaiting:
		if s.HandInProgress {
			return corrupt("hand in progress while %s", s.Phase)
		}
	case PhaseBetPlaced, PhasePlaying:
		if !s.HandInProgress {
			return corrupt("no hand in progress while %s", s.Phase)
		}

		if s.CurrentBet <= 0 {
			return corrupt("hand in progress without a bet")
		}
	default:
		return corrupt("unknown game_phase %q", s.Phase)
	}

	if s.Phase == PhasePlaying && (len(s.PlayerHand) < 2 || len(s.DealerHand) < 2) {
		return corrupt("hand in play without a full deal")
	}

	seen := make(map[string]bool, deck.Size)
	for _, cards := range [][]*deck.Card{s.Deck.Cards, s.PlayerHand, s.DealerHand} {
		for _, card := range cards {
			if err := card.Validate(); err != nil {
				return fmt.Errorf("%w: %v", ErrCorruptState, err)
			}

			key := card.String()
			if seen[key] {
				return corrupt("duplicate card %s", card.Name())
			}
			seen[key] = true
		}
	}

	return nil
}

// refreshScores recomputes the cached scores from the hands
func (s *GameState) refreshScores() {
	s.PlayerScore = s.PlayerHand.Score()
	s.DealerScore = s.DealerHand.Score()
}

// Clone returns a deep copy of the state
func (s *GameState) Clone() *GameState {
	cp := *s
	if s.Deck != nil {
		cp.Deck = s.Deck.Clone()
	}

	cp.PlayerHand = s.PlayerHand.Clone()
	cp.DealerHand = s.DealerHand.Clone()
	return &cp
}

// IsGameOver returns true when no hand is in progress and the player cannot cover the minimum bet
func (s *GameState) IsGameOver(options Options) bool {
	return !s.HandInProgress && s.PlayerChips < options.MinimumBet
}

// CurrentStep derives the conversation step the state belongs to
func (s *GameState) CurrentStep(options Options) Step {
	switch {
	case s.HandInProgress:
		return StepPlaying
	case s.IsGameOver(options):
		return StepGameOver
	case len(s.PlayerHand) > 0:
		return StepHandComplete
	}

	return StepBetting
}

// View is the part of the state that is safe to show a display surface
type View struct {
	PlayerHand     deck.Hand `json:"player_hand"`
	DealerHand     deck.Hand `json:"dealer_hand"`
	PlayerScore    int       `json:"player_score"`
	DealerScore    int       `json:"dealer_score"`
	DealerRevealed bool      `json:"dealer_revealed"`
	CurrentBet     int       `json:"current_bet"`
	PlayerChips    int       `json:"player_chips"`
	Phase          Phase     `json:"game_phase"`
	HandInProgress bool      `json:"hand_in_progress"`
	CardsRemaining int       `json:"cards_remaining"`
}

// View returns a display-safe copy of the state.
// While a hand is in progress the hole card is nil and only the up card is scored.
func (s *GameState) View() *View {
	v := &View{
		PlayerHand:     s.PlayerHand.Clone(),
		PlayerScore:    s.PlayerScore,
		CurrentBet:     s.CurrentBet,
		PlayerChips:    s.PlayerChips,
		Phase:          s.Phase,
		HandInProgress: s.HandInProgress,
	}

	if s.Deck != nil {
		v.CardsRemaining = s.Deck.CardsLeft()
	}

	if s.HandInProgress && len(s.DealerHand) > 0 {
		v.DealerHand = hideHoleCard(s.DealerHand)
		v.DealerScore = deck.Hand{s.DealerHand[0]}.Score()
		return v
	}

	v.DealerHand = s.DealerHand.Clone()
	v.DealerScore = s.DealerScore
	v.DealerRevealed = len(s.DealerHand) > 0
	return v
}

// hideHoleCard returns the dealer hand with every card after the up card replaced by nil
func hideHoleCard(h deck.Hand) deck.Hand {
	hidden := make(deck.Hand, len(h))
	hidden[0] = h[0].Clone()
	return hidden
}
