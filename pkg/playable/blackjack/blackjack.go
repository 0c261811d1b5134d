package blackjack

import (
	"errors"
	"fmt"

	"blackjackdealer-server/internal/rng"
	"blackjackdealer-server/pkg/deck"
	"blackjackdealer-server/pkg/playable"

	"github.com/sirupsen/logrus"
)

// Engine runs blackjack actions against a snapshot.
// It holds no game state of its own and is safe for concurrent use as long as the generator is.
type Engine struct {
	options Options
	rng     rng.Generator
	logger  logrus.FieldLogger
}

// Result is the outcome of a single action
type Result struct {
	Action Action     `json:"action"`
	State  *GameState `json:"state"`
	Events []Event    `json:"events"`

	// Step is set when the caller's conversation must move to a new step
	Step *Step `json:"step,omitempty"`

	// Resolution is set when the action settled the hand
	Resolution *Resolution `json:"resolution,omitempty"`

	// Rejected is true when the action was not allowed. State is unchanged and Message explains why.
	Rejected bool   `json:"rejected"`
	Message  string `json:"message,omitempty"`
}

func (r *Result) emit(event Event) {
	r.Events = append(r.Events, event)
}

func (r *Result) advance(step Step) {
	r.Step = &step
}

// NewEngine returns a new engine
func NewEngine(logger logrus.FieldLogger, gen rng.Generator, options Options) (*Engine, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	if gen == nil {
		return nil, errors.New("random number generator is required")
	}

	return &Engine{
		options: options,
		rng:     gen,
		logger:  logger,
	}, nil
}

// Options returns the table rules
func (e *Engine) Options() Options {
	return e.options
}

// NewGameState returns the default state for a new player
func (e *Engine) NewGameState() *GameState {
	return NewGameState(e.options)
}

// Apply performs the action against the snapshot and returns the next state.
// A nil snapshot starts a new game. The snapshot itself is never modified.
// Rule violations are reported through Result.Rejected; an error means the snapshot or request is broken.
func (e *Engine) Apply(snapshot *GameState, message *playable.PayloadIn) (*Result, error) {
	if message == nil {
		return nil, fmt.Errorf("%w: missing payload", ErrUnknownAction)
	}

	action, err := ActionFromString(message.Action)
	if err != nil {
		return nil, err
	}

	if snapshot == nil {
		snapshot = e.NewGameState()
	} else if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	state := snapshot.Clone()
	state.refreshScores()

	res := &Result{
		Action: action,
		State:  state,
		Events: []Event{},
	}

	switch action {
	case ActionPlaceBet:
		amount, ok := message.AdditionalData.GetInt("amount")
		if !ok {
			err = GuardError("How many chips would you like to bet?")
		} else {
			err = e.placeBet(state, res, amount)
		}
	case ActionHit:
		err = e.hit(state, res)
	case ActionStand:
		err = e.stand(state, res)
	case ActionDoubleDown:
		err = e.doubleDown(state, res)
	case ActionNewHand:
		err = e.newHand(state, res)
	}

	if err != nil {
		var guard GuardError
		if !errors.As(err, &guard) {
			return nil, err
		}

		e.logger.WithFields(logrus.Fields{
			"action": action.String(),
			"reason": guard.Error(),
		}).Debug("action rejected")

		// a rejected action hands back the snapshot exactly as it came in
		return &Result{
			Action:   action,
			State:    snapshot.Clone(),
			Events:   []Event{},
			Rejected: true,
			Message:  guard.Error(),
		}, nil
	}

	return res, nil
}

func (e *Engine) placeBet(state *GameState, res *Result, amount int) error {
	if state.HandInProgress {
		return GuardError("There's already a hand in progress. Please finish it first.")
	}

	if state.PlayerChips < e.options.MinimumBet {
		return GuardError(fmt.Sprintf("You only have %d chips left, which is below the minimum bet of %d. Game over! Thanks for playing!", state.PlayerChips, e.options.MinimumBet))
	}

	if amount > state.PlayerChips {
		return GuardError(fmt.Sprintf("You don't have that many chips. You have %d chips.", state.PlayerChips))
	}

	if amount < e.options.MinimumBet {
		return GuardError(fmt.Sprintf("Minimum bet is %d chips at this table.", e.options.MinimumBet))
	}

	res.emit(&ClearTableEvent{Type: EventClearTable, Chips: state.PlayerChips})

	state.CurrentBet = amount
	state.PlayerChips -= amount
	state.Phase = PhaseBetPlaced
	state.HandInProgress = true
	state.PlayerHand = deck.Hand{}
	state.DealerHand = deck.Hand{}
	state.refreshScores()

	res.emit(&BetPlacedEvent{
		Type:           EventBetPlaced,
		Amount:         amount,
		RemainingChips: state.PlayerChips,
	})

	if state.Deck.CardsLeft() < e.options.ReshuffleThreshold {
		e.replaceDeck(state, res)
	}

	for _, hand := range []*deck.Hand{&state.PlayerHand, &state.PlayerHand, &state.DealerHand, &state.DealerHand} {
		card, err := e.drawCard(state, res)
		if err != nil {
			return err
		}

		hand.AddCard(card)
	}

	state.refreshScores()
	state.Phase = PhasePlaying

	res.emit(&CardsDealtEvent{
		Type:               EventCardsDealt,
		PlayerHand:         state.PlayerHand.Clone(),
		DealerHand:         hideHoleCard(state.DealerHand),
		PlayerScore:        state.PlayerScore,
		DealerVisibleScore: deck.Hand{state.DealerHand[0]}.Score(),
	})

	e.logger.WithFields(logrus.Fields{
		"bet":         amount,
		"playerHand":  state.PlayerHand.String(),
		"playerScore": state.PlayerScore,
	}).Debug("cards dealt")

	if state.PlayerScore == deck.Blackjack {
		return e.finishHand(state, res)
	}

	res.advance(StepPlaying)
	return nil
}

func (e *Engine) hit(state *GameState, res *Result) error {
	if state.Phase != PhasePlaying {
		return GuardError("You can't hit right now. The hand is not in play.")
	}

	if !state.HandInProgress {
		return GuardError("No hand in progress. Please place a bet first.")
	}

	card, err := e.drawCard(state, res)
	if err != nil {
		return err
	}

	state.PlayerHand.AddCard(card)
	state.refreshScores()

	res.emit(&PlayerHitEvent{
		Type:        EventPlayerHit,
		NewCard:     card.Clone(),
		PlayerHand:  state.PlayerHand.Clone(),
		PlayerScore: state.PlayerScore,
		Busted:      state.PlayerScore > deck.Blackjack,
	})

	switch {
	case state.PlayerScore > deck.Blackjack:
		return e.bust(state, res)
	case state.PlayerScore == deck.Blackjack:
		return e.finishHand(state, res)
	}

	return nil
}

func (e *Engine) stand(state *GameState, res *Result) error {
	if state.Phase != PhasePlaying {
		return GuardError("You can't stand right now. The hand is not in play.")
	}

	if !state.HandInProgress {
		return GuardError("No hand in progress. Please place a bet first.")
	}

	res.emit(&PlayerStandEvent{
		Type:        EventPlayerStand,
		PlayerScore: state.PlayerScore,
	})

	return e.finishHand(state, res)
}

func (e *Engine) doubleDown(state *GameState, res *Result) error {
	if state.Phase != PhasePlaying || !state.HandInProgress {
		return GuardError("You can't double down right now.")
	}

	if len(state.PlayerHand) != 2 {
		return GuardError("You can only double down on your first two cards.")
	}

	if state.CurrentBet > state.PlayerChips {
		return GuardError(fmt.Sprintf("You need %d chips to double down, but you only have %d.", state.CurrentBet, state.PlayerChips))
	}

	state.PlayerChips -= state.CurrentBet
	state.CurrentBet *= 2

	card, err := e.drawCard(state, res)
	if err != nil {
		return err
	}

	state.PlayerHand.AddCard(card)
	state.refreshScores()

	res.emit(&DoubleDownEvent{
		Type:           EventDoubleDown,
		NewBet:         state.CurrentBet,
		NewCard:        card.Clone(),
		PlayerHand:     state.PlayerHand.Clone(),
		PlayerScore:    state.PlayerScore,
		RemainingChips: state.PlayerChips,
		Busted:         state.PlayerScore > deck.Blackjack,
	})

	if state.PlayerScore > deck.Blackjack {
		return e.bust(state, res)
	}

	return e.finishHand(state, res)
}

// newHand clears the table. A bet still on the table is forfeited; callers decide whether to allow that.
func (e *Engine) newHand(state *GameState, res *Result) error {
	state.PlayerHand = deck.Hand{}
	state.DealerHand = deck.Hand{}
	state.CurrentBet = 0
	state.HandInProgress = false
	state.Phase = PhaseWaiting
	state.refreshScores()

	res.emit(&GameResetEvent{Type: EventGameReset, Chips: state.PlayerChips})
	res.advance(StepBetting)
	return nil
}

// bust settles a hand the player has already lost
func (e *Engine) bust(state *GameState, res *Result) error {
	if e.options.DealerPlaysOnBust {
		return e.finishHand(state, res)
	}

	e.settleHand(state, res)
	return nil
}

// finishHand runs once the player's turn is over: the dealer plays, then the bet is settled
func (e *Engine) finishHand(state *GameState, res *Result) error {
	if err := e.playDealerHand(state, res); err != nil {
		return err
	}

	e.settleHand(state, res)
	return nil
}

func (e *Engine) settleHand(state *GameState, res *Result) {
	r := resolve(state)
	res.Resolution = &r

	res.emit(&HandResolvedEvent{
		Type:        EventHandResolved,
		Outcome:     r.Outcome,
		Result:      r.Outcome.Message(),
		PlayerScore: r.PlayerScore,
		DealerScore: r.DealerScore,
		Bet:         r.Bet,
		Winnings:    r.Payout,
		TotalChips:  state.PlayerChips,
	})

	if state.IsGameOver(e.options) {
		res.advance(StepGameOver)
	} else {
		res.advance(StepHandComplete)
	}

	e.logger.WithFields(logrus.Fields{
		"outcome":     r.Outcome.String(),
		"bet":         r.Bet,
		"payout":      r.Payout,
		"playerScore": r.PlayerScore,
		"dealerScore": r.DealerScore,
		"chips":       state.PlayerChips,
	}).Info("hand resolved")
}

// drawCard draws the next card. A deck that runs dry mid-hand is replaced by the cards not on the table.
func (e *Engine) drawCard(state *GameState, res *Result) (*deck.Card, error) {
	if !state.Deck.CanDraw(1) {
		e.replaceDeck(state, res)
	}

	return state.Deck.Draw()
}

// replaceDeck swaps in a freshly shuffled deck without the cards currently in either hand
func (e *Engine) replaceDeck(state *GameState, res *Result) {
	inPlay := make(map[string]bool, len(state.PlayerHand)+len(state.DealerHand))
	for _, card := range append(state.PlayerHand.Clone(), state.DealerHand...) {
		inPlay[card.String()] = true
	}

	fresh := deck.New()
	cards := fresh.Cards[:0]
	for _, card := range fresh.Cards {
		if !inPlay[card.String()] {
			cards = append(cards, card)
		}
	}
	fresh.Cards = cards
	fresh.Shuffle(e.rng)

	state.Deck = fresh

	res.emit(&DeckShuffledEvent{
		Type:        EventDeckShuffled,
		CardsInDeck: fresh.CardsLeft(),
	})

	e.logger.WithFields(logrus.Fields{
		"cards": fresh.CardsLeft(),
		"hash":  fresh.HashCode(),
	}).Debug("shuffled a fresh deck")
}
