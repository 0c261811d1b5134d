package blackjack

import "errors"

// ErrCorruptState is returned when a snapshot violates a structural invariant.
// It points at a defect in the engine or in the caller's state storage.
var ErrCorruptState = errors.New("corrupt game state")

// ErrUnknownAction is returned when the requested action does not exist
var ErrUnknownAction = errors.New("unknown action")

// GuardError is returned when an action is not allowed in the current state.
// The message is safe to read back to the player.
type GuardError string

func (g GuardError) Error() string {
	return string(g)
}
