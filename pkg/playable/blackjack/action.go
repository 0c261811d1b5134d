package blackjack

import (
	"encoding/json"
	"fmt"
)

// Action is something the player asks the dealer to do
type Action int

// Action constants
const (
	ActionPlaceBet Action = iota
	ActionHit
	ActionStand
	ActionDoubleDown
	ActionNewHand
)

// Actions lists every action
var Actions = []Action{ActionPlaceBet, ActionHit, ActionStand, ActionDoubleDown, ActionNewHand}

func (a Action) String() string {
	switch a {
	case ActionPlaceBet:
		return "place_bet"
	case ActionHit:
		return "hit"
	case ActionStand:
		return "stand"
	case ActionDoubleDown:
		return "double_down"
	case ActionNewHand:
		return "new_hand"
	}

	panic(fmt.Sprintf("invalid action: %d", a))
}

// MarshalJSON encodes the action by name
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// ActionFromString returns an action from its name
func ActionFromString(action string) (Action, error) {
	for _, a := range Actions {
		if a.String() == action {
			return a, nil
		}
	}

	return -1, fmt.Errorf("%w: %q", ErrUnknownAction, action)
}
