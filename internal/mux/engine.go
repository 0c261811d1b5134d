package mux

import (
	"encoding/json"
	"net/http"

	"blackjackdealer-server/pkg/playable"
	"blackjackdealer-server/pkg/playable/blackjack"
)

type actionPayload struct {
	Action string `json:"action"`
	Amount *int   `json:"amount,omitempty"`
}

func (a actionPayload) payloadIn() *playable.PayloadIn {
	if a.Amount == nil {
		return playable.NewPayload(a.Action)
	}

	return playable.NewPayload(a.Action, "amount", *a.Amount)
}

type enginePayload struct {
	// State is the snapshot returned by the previous call. null starts a new game.
	State json.RawMessage `json:"state"`
	actionPayload
}

type engineResponse struct {
	State            *blackjack.GameState  `json:"state"`
	View             *blackjack.View       `json:"view"`
	Events           []blackjack.Event     `json:"events"`
	Narration        string                `json:"narration"`
	Step             *blackjack.Step       `json:"step,omitempty"`
	Resolution       *blackjack.Resolution `json:"resolution,omitempty"`
	Rejected         bool                  `json:"rejected"`
	Message          string                `json:"message,omitempty"`
	CardImageBaseURL string                `json:"cardImageBaseUrl"`
}

func (m *Mux) newEngineResponse(res *blackjack.Result) *engineResponse {
	return &engineResponse{
		State:            res.State,
		View:             res.State.View(),
		Events:           res.Events,
		Narration:        blackjack.Narrate(res, m.engine.Options()),
		Step:             res.Step,
		Resolution:       res.Resolution,
		Rejected:         res.Rejected,
		Message:          res.Message,
		CardImageBaseURL: m.cardImageBaseURL,
	}
}

func (m *Mux) postEngine() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp enginePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		state, err := blackjack.ParseGameState(pp.State)
		if err != nil {
			writeEngineError(w, err)
			return
		}

		res, err := m.engine.Apply(state, pp.payloadIn())
		if err != nil {
			writeEngineError(w, err)
			return
		}

		// rejected actions are still a successful exchange with the player
		writeJSON(w, http.StatusOK, m.newEngineResponse(res))
	}
}
