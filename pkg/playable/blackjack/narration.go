package blackjack

import (
	"fmt"
	"strings"

	"blackjackdealer-server/pkg/deck"
)

// Narrate renders the result as the dealer would say it
func Narrate(res *Result, options Options) string {
	if res.Rejected {
		return res.Message
	}

	var sb strings.Builder
	for _, event := range res.Events {
		switch e := event.(type) {
		case *BetPlacedEvent:
			fmt.Fprintf(&sb, "Perfect! You've bet %d chips. You have %d chips remaining.\n\n", e.Amount, e.RemainingChips)
		case *DeckShuffledEvent:
			sb.WriteString("Shuffling a fresh deck.\n\n")
		case *CardsDealtEvent:
			fmt.Fprintf(&sb, "Cards dealt! You have: %s for a total of %d points.\n", strings.Join(e.PlayerHand.Names(), ", "), e.PlayerScore)
			fmt.Fprintf(&sb, "I'm showing %s with my other card face down.", e.DealerHand.FirstCard().Name())
			if e.PlayerScore == deck.Blackjack {
				sb.WriteString("\n\nBlackjack! Twenty-one!")
			} else {
				sb.WriteString("\n\nThe hand is now in play. What would you like to do?")
			}
		case *PlayerHitEvent:
			fmt.Fprintf(&sb, "The player hits and receives: %s.\n", e.NewCard.Name())
			fmt.Fprintf(&sb, "Player's complete hand: %s.\n", strings.Join(e.PlayerHand.Names(), ", "))
			fmt.Fprintf(&sb, "Player's total: %d points.", e.PlayerScore)
			switch {
			case e.Busted:
				sb.WriteString(" That's a bust! You're over twenty-one.")
			case e.PlayerScore == deck.Blackjack:
				sb.WriteString(" Twenty-one! Perfect!")
			default:
				sb.WriteString("\n\nThe hand continues.")
			}
		case *PlayerStandEvent:
			fmt.Fprintf(&sb, "The player stands with %d points. Now it's the dealer's turn.\n", e.PlayerScore)
		case *DoubleDownEvent:
			fmt.Fprintf(&sb, "The player doubles down! The bet is now doubled to %d chips.\n", e.NewBet)
			fmt.Fprintf(&sb, "Player receives one final card: %s.\n", e.NewCard.Name())
			fmt.Fprintf(&sb, "Player's final total: %d points. Player has %d chips remaining.", e.PlayerScore, e.RemainingChips)
			if e.Busted {
				sb.WriteString(" That's a bust!")
			} else {
				sb.WriteString("\n\n")
			}
		case *DealerRevealEvent:
			fmt.Fprintf(&sb, "\nDealer reveals hole card. Dealer's complete hand: %s for %d points.\n", strings.Join(e.DealerHand.Names(), ", "), e.DealerScore)
		case *DealerDrawEvent:
			fmt.Fprintf(&sb, "Dealer draws %s. Dealer now has %d points.\n", e.NewCard.Name(), e.DealerScore)
		case *DealerPlayEvent:
			if e.DealerBusted {
				sb.WriteString("Dealer busts! Over 21!")
			} else {
				fmt.Fprintf(&sb, "Dealer stands with %d points.", e.DealerScore)
			}
		case *HandResolvedEvent:
			narrateResolution(&sb, e, options)
		case *GameResetEvent:
			fmt.Fprintf(&sb, "Starting a new hand. You have %d chips.", e.Chips)
		}
	}

	return sb.String()
}

func narrateResolution(sb *strings.Builder, e *HandResolvedEvent, options Options) {
	fmt.Fprintf(sb, "\n\nHand complete! %s\n", e.Result)
	fmt.Fprintf(sb, "Player had %d, Dealer had %d.\n", e.PlayerScore, e.DealerScore)

	switch {
	case e.Winnings > e.Bet:
		fmt.Fprintf(sb, "Player wins %d chips! ", e.Winnings-e.Bet)
	case e.Winnings == e.Bet:
		fmt.Fprintf(sb, "Player's bet of %d chips is returned. ", e.Bet)
	default:
		fmt.Fprintf(sb, "Player loses their %d chip bet. ", e.Bet)
	}

	fmt.Fprintf(sb, "Player now has %d chips total.", e.TotalChips)

	if e.TotalChips < options.MinimumBet {
		sb.WriteString("\n\nYou're out of chips! Game over. Thanks for playing!")
	}
}
