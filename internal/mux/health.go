package mux

import (
	"net/http"

	"blackjackdealer-server/pkg/playable/blackjack"
)

type healthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Rules   blackjack.Options `json:"rules"`
}

// getHealth reports the version and the table rules the engine was started with
func (m *Mux) getHealth() http.HandlerFunc {
	payload := healthResponse{
		Status:  "OK",
		Version: m.version,
		Rules:   m.engine.Options(),
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, payload)
	}
}
