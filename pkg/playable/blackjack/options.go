package blackjack

import "errors"

// Options contains the table rules for a game of blackjack
type Options struct {
	StartingChips int `yaml:"startingChips" json:"startingChips" envconfig:"starting_chips"`
	MinimumBet    int `yaml:"minimumBet" json:"minimumBet" envconfig:"minimum_bet"`
	// ReshuffleThreshold is the fewest cards a deck may hold before a deal. Below it a fresh deck is used.
	ReshuffleThreshold int `yaml:"reshuffleThreshold" json:"reshuffleThreshold" envconfig:"reshuffle_threshold"`
	// DealerStandsOn is the total the dealer stops drawing at
	DealerStandsOn int `yaml:"dealerStandsOn" json:"dealerStandsOn" envconfig:"dealer_stands_on"`
	// DealerPlaysOnBust makes the dealer play out their hand after the player busts
	DealerPlaysOnBust bool `yaml:"dealerPlaysOnBust" json:"dealerPlaysOnBust" envconfig:"dealer_plays_on_bust"`
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		StartingChips:      1000,
		MinimumBet:         10,
		ReshuffleThreshold: 15,
		DealerStandsOn:     17,
		DealerPlaysOnBust:  false,
	}
}

// Validate ensures the rules can produce a playable game
func (o Options) Validate() error {
	if o.MinimumBet <= 0 {
		return errors.New("minimum bet must be > 0")
	}

	if o.StartingChips < o.MinimumBet {
		return errors.New("starting chips must be >= the minimum bet")
	}

	// a deal needs four cards
	if o.ReshuffleThreshold < 4 || o.ReshuffleThreshold > 52 {
		return errors.New("reshuffle threshold must be between 4 and 52")
	}

	if o.DealerStandsOn < 12 || o.DealerStandsOn > 21 {
		return errors.New("dealer must stand on a total between 12 and 21")
	}

	return nil
}
