package blackjack

import (
	"encoding/json"
	"fmt"

	"blackjackdealer-server/pkg/deck"
)

// Outcome is how a hand was decided
type Outcome int

// Outcome constants
const (
	OutcomePlayerBust Outcome = iota
	OutcomeDealerBust
	OutcomePlayerWin
	OutcomeDealerWin
	OutcomePush
	OutcomeBlackjack
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerBust:
		return "player_bust"
	case OutcomeDealerBust:
		return "dealer_bust"
	case OutcomePlayerWin:
		return "player_win"
	case OutcomeDealerWin:
		return "dealer_win"
	case OutcomePush:
		return "push"
	case OutcomeBlackjack:
		return "blackjack"
	}

	panic(fmt.Sprintf("invalid outcome: %d", int(o)))
}

// Message is what the dealer says about the outcome
func (o Outcome) Message() string {
	switch o {
	case OutcomePlayerBust:
		return "You bust. House wins."
	case OutcomeDealerBust:
		return "I bust! You win!"
	case OutcomePlayerWin:
		return "You win!"
	case OutcomeDealerWin:
		return "House wins."
	case OutcomePush:
		return "Push. We tied."
	case OutcomeBlackjack:
		return "Blackjack pays three to two!"
	}

	panic(fmt.Sprintf("invalid outcome: %d", int(o)))
}

// MarshalJSON encodes the outcome by name
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// Resolution is the settled result of a hand
type Resolution struct {
	Outcome     Outcome `json:"outcome"`
	Bet         int     `json:"bet"`
	Payout      int     `json:"payout"`
	PlayerScore int     `json:"player_score"`
	DealerScore int     `json:"dealer_score"`
}

// Net is the player's gain or loss for the hand, taking into account the bet already taken
func (r Resolution) Net() int {
	return r.Payout - r.Bet
}

// settle decides the outcome and payout. Payout includes the returned stake.
func settle(playerHand deck.Hand, playerScore, dealerScore, bet int) Resolution {
	r := Resolution{
		Bet:         bet,
		PlayerScore: playerScore,
		DealerScore: dealerScore,
	}

	switch {
	case playerScore > deck.Blackjack:
		r.Outcome = OutcomePlayerBust
	case dealerScore > deck.Blackjack:
		r.Outcome, r.Payout = OutcomeDealerBust, bet*2
	case playerScore > dealerScore:
		r.Outcome, r.Payout = OutcomePlayerWin, bet*2
	case dealerScore > playerScore:
		r.Outcome = OutcomeDealerWin
	default:
		r.Outcome, r.Payout = OutcomePush, bet
	}

	// a two-card 21 pays 3:2 unless the dealer also has 21
	if playerScore == deck.Blackjack && len(playerHand) == 2 && dealerScore != deck.Blackjack {
		r.Outcome, r.Payout = OutcomeBlackjack, bet*5/2
	}

	return r
}

// resolve settles the hand and pays the player. The hands are left on the table.
func resolve(state *GameState) Resolution {
	r := settle(state.PlayerHand, state.PlayerScore, state.DealerScore, state.CurrentBet)

	state.PlayerChips += r.Payout
	state.HandInProgress = false
	state.Phase = PhaseWaiting

	return r
}
