package blackjack

import "blackjackdealer-server/pkg/deck"

// playDealerHand reveals the hole card and draws until the dealer reaches DealerStandsOn
func (e *Engine) playDealerHand(state *GameState, res *Result) error {
	var hole *deck.Card
	if len(state.DealerHand) > 1 {
		hole = state.DealerHand[1].Clone()
	}

	res.emit(&DealerRevealEvent{
		Type:        EventDealerReveal,
		HoleCard:    hole,
		DealerHand:  state.DealerHand.Clone(),
		DealerScore: state.DealerScore,
	})

	for state.DealerScore < e.options.DealerStandsOn {
		card, err := e.drawCard(state, res)
		if err != nil {
			return err
		}

		state.DealerHand.AddCard(card)
		state.DealerScore = state.DealerHand.Score()

		res.emit(&DealerDrawEvent{
			Type:        EventDealerDraw,
			NewCard:     card.Clone(),
			DealerScore: state.DealerScore,
		})
	}

	res.emit(&DealerPlayEvent{
		Type:         EventDealerPlay,
		DealerHand:   state.DealerHand.Clone(),
		DealerScore:  state.DealerScore,
		DealerBusted: state.DealerScore > deck.Blackjack,
	})

	return nil
}
