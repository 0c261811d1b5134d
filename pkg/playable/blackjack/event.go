package blackjack

import "blackjackdealer-server/pkg/deck"

// EventType identifies an event for display surfaces
type EventType string

// EventType constants
const (
	EventClearTable   EventType = "clear_table"
	EventBetPlaced    EventType = "bet_placed"
	EventDeckShuffled EventType = "deck_shuffled"
	EventCardsDealt   EventType = "cards_dealt"
	EventPlayerHit    EventType = "player_hit"
	EventPlayerStand  EventType = "player_stand"
	EventDoubleDown   EventType = "double_down"
	EventDealerReveal EventType = "dealer_reveal"
	EventDealerDraw   EventType = "dealer_draw"
	EventDealerPlay   EventType = "dealer_play"
	EventHandResolved EventType = "hand_resolved"
	EventGameReset    EventType = "game_reset"
)

// Event is something that happened while an action ran
type Event interface {
	EventType() EventType
}

// ClearTableEvent is sent before a new deal
type ClearTableEvent struct {
	Type  EventType `json:"type"`
	Chips int       `json:"chips"`
}

// EventType returns the event type
func (e *ClearTableEvent) EventType() EventType { return e.Type }

// BetPlacedEvent is sent when a bet is accepted
type BetPlacedEvent struct {
	Type           EventType `json:"type"`
	Amount         int       `json:"amount"`
	RemainingChips int       `json:"remaining_chips"`
}

// EventType returns the event type
func (e *BetPlacedEvent) EventType() EventType { return e.Type }

// DeckShuffledEvent is sent when a fresh deck replaces a short one
type DeckShuffledEvent struct {
	Type        EventType `json:"type"`
	CardsInDeck int       `json:"cards_in_deck"`
}

// EventType returns the event type
func (e *DeckShuffledEvent) EventType() EventType { return e.Type }

// CardsDealtEvent is sent after the initial deal. The dealer hole card is nil.
type CardsDealtEvent struct {
	Type               EventType `json:"type"`
	PlayerHand         deck.Hand `json:"player_hand"`
	DealerHand         deck.Hand `json:"dealer_hand"`
	PlayerScore        int       `json:"player_score"`
	DealerVisibleScore int       `json:"dealer_visible_score"`
}

// EventType returns the event type
func (e *CardsDealtEvent) EventType() EventType { return e.Type }

// PlayerHitEvent is sent when the player takes a card
type PlayerHitEvent struct {
	Type        EventType  `json:"type"`
	NewCard     *deck.Card `json:"new_card"`
	PlayerHand  deck.Hand  `json:"player_hand"`
	PlayerScore int        `json:"player_score"`
	Busted      bool       `json:"busted"`
}

// EventType returns the event type
func (e *PlayerHitEvent) EventType() EventType { return e.Type }

// PlayerStandEvent is sent when the player stands
type PlayerStandEvent struct {
	Type        EventType `json:"type"`
	PlayerScore int       `json:"player_score"`
}

// EventType returns the event type
func (e *PlayerStandEvent) EventType() EventType { return e.Type }

// DoubleDownEvent is sent when the player doubles their bet and takes a final card
type DoubleDownEvent struct {
	Type           EventType  `json:"type"`
	NewBet         int        `json:"new_bet"`
	NewCard        *deck.Card `json:"new_card"`
	PlayerHand     deck.Hand  `json:"player_hand"`
	PlayerScore    int        `json:"player_score"`
	RemainingChips int        `json:"remaining_chips"`
	Busted         bool       `json:"busted"`
}

// EventType returns the event type
func (e *DoubleDownEvent) EventType() EventType { return e.Type }

// DealerRevealEvent is sent when the dealer turns over the hole card
type DealerRevealEvent struct {
	Type        EventType  `json:"type"`
	HoleCard    *deck.Card `json:"hole_card"`
	DealerHand  deck.Hand  `json:"dealer_hand"`
	DealerScore int        `json:"dealer_score"`
}

// EventType returns the event type
func (e *DealerRevealEvent) EventType() EventType { return e.Type }

// DealerDrawEvent is sent for each card the dealer draws
type DealerDrawEvent struct {
	Type        EventType  `json:"type"`
	NewCard     *deck.Card `json:"new_card"`
	DealerScore int        `json:"dealer_score"`
}

// EventType returns the event type
func (e *DealerDrawEvent) EventType() EventType { return e.Type }

// DealerPlayEvent is sent once the dealer has finished drawing
type DealerPlayEvent struct {
	Type         EventType `json:"type"`
	DealerHand   deck.Hand `json:"dealer_hand"`
	DealerScore  int       `json:"dealer_score"`
	DealerBusted bool      `json:"dealer_busted"`
}

// EventType returns the event type
func (e *DealerPlayEvent) EventType() EventType { return e.Type }

// HandResolvedEvent is sent when the bet is settled
type HandResolvedEvent struct {
	Type        EventType `json:"type"`
	Outcome     Outcome   `json:"outcome"`
	Result      string    `json:"result"`
	PlayerScore int       `json:"player_score"`
	DealerScore int       `json:"dealer_score"`
	Bet         int       `json:"bet"`
	Winnings    int       `json:"winnings"`
	TotalChips  int       `json:"total_chips"`
}

// EventType returns the event type
func (e *HandResolvedEvent) EventType() EventType { return e.Type }

// GameResetEvent is sent when the table is cleared for a new hand
type GameResetEvent struct {
	Type  EventType `json:"type"`
	Chips int       `json:"chips"`
}

// EventType returns the event type
func (e *GameResetEvent) EventType() EventType { return e.Type }
