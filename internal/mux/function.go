package mux

import (
	"encoding/json"
	"errors"
	"net/http"

	"blackjackdealer-server/pkg/playable"
	"blackjackdealer-server/pkg/playable/blackjack"
)

// functionPayload is a function call made by a conversational agent.
// The game rides along in global_data.game_state; nothing is stored server-side.
type functionPayload struct {
	Function string `json:"function"`
	Argument struct {
		Parsed []playable.AdditionalData `json:"parsed"`
	} `json:"argument"`
	GlobalData map[string]json.RawMessage `json:"global_data"`
}

type functionResponse struct {
	Response string                   `json:"response"`
	Action   []map[string]interface{} `json:"action,omitempty"`
}

func (f *functionPayload) payloadIn() *playable.PayloadIn {
	data := playable.AdditionalData{}
	if len(f.Argument.Parsed) > 0 && f.Argument.Parsed[0] != nil {
		data = f.Argument.Parsed[0]
	}

	return &playable.PayloadIn{
		Action:         f.Function,
		AdditionalData: data,
	}
}

func (m *Mux) postFunction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp functionPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.Function == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("function is required"))
			return
		}

		state, err := blackjack.ParseGameState(pp.GlobalData["game_state"])
		if err != nil {
			writeEngineError(w, err)
			return
		}

		res, err := m.engine.Apply(state, pp.payloadIn())
		if err != nil {
			writeEngineError(w, err)
			return
		}

		resp := functionResponse{
			Response: blackjack.Narrate(res, m.engine.Options()),
		}

		if res.Rejected {
			writeJSON(w, http.StatusOK, resp)
			return
		}

		globalData := make(map[string]interface{}, len(pp.GlobalData)+2)
		for key, val := range pp.GlobalData {
			globalData[key] = val
		}
		globalData["game_state"] = res.State
		globalData["current_chips"] = res.State.PlayerChips

		resp.Action = append(resp.Action, map[string]interface{}{"set_global_data": globalData})
		for _, event := range res.Events {
			resp.Action = append(resp.Action, map[string]interface{}{"user_event": event})
		}

		if res.Step != nil {
			resp.Action = append(resp.Action, map[string]interface{}{"change_step": *res.Step})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
