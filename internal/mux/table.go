package mux

import (
	"errors"
	"net/http"
	"strings"

	"blackjackdealer-server/internal/util"
	"blackjackdealer-server/pkg/playable"
	"blackjackdealer-server/pkg/playable/blackjack"
	"blackjackdealer-server/pkg/table"

	"github.com/sirupsen/logrus"
)

type tableResponse struct {
	*table.Table
	View *blackjack.View `json:"view"`
	Step blackjack.Step  `json:"step"`
}

func (m *Mux) newTableResponse(tbl *table.Table) *tableResponse {
	return &tableResponse{
		Table: tbl,
		View:  tbl.State.View(),
		Step:  tbl.State.CurrentStep(m.engine.Options()),
	}
}

func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		tables, err := m.store.GetTablesForCaller(r.Context(), callerID(r), offset, limit)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, tables)
	}
}

type postTablePayload struct {
	// Name is optional. A random name is chosen when it is empty.
	Name string `json:"name"`
}

func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTablePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		name := strings.TrimSpace(pp.Name)
		if name == "" {
			name = util.GetRandomName()
		}

		tbl, err := m.store.CreateTable(r.Context(), callerID(r), name, m.engine.NewGameState())
		if err != nil {
			var ue table.UserError
			if errors.As(err, &ue) {
				writeJSONError(w, http.StatusBadRequest, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		logrus.WithFields(logrus.Fields{
			"uuid":   tbl.UUID,
			"caller": tbl.CallerID,
		}).Info("table created")

		writeJSON(w, http.StatusCreated, m.newTableResponse(tbl))
	}
}

func (m *Mux) getTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.newTableResponse(tableFromContext(r)))
	}
}

const finishHandFirstMessage = "Let's finish the current hand before starting a new one."

// tableActionResponse is engineResponse without the snapshot; a table's hole card and deck stay server-side
type tableActionResponse struct {
	View       *blackjack.View       `json:"view"`
	Events     []blackjack.Event     `json:"events"`
	Narration  string                `json:"narration"`
	Step       *blackjack.Step       `json:"step,omitempty"`
	Resolution *blackjack.Resolution `json:"resolution,omitempty"`
	Rejected   bool                  `json:"rejected"`
	Message    string                `json:"message,omitempty"`

	CardImageBaseURL string `json:"cardImageBaseUrl"`
}

func (m *Mux) newTableActionResponse(res *blackjack.Result) *tableActionResponse {
	return &tableActionResponse{
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

func (m *Mux) postTableUUIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp actionPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		uuid := tableFromContext(r).UUID

		var res *blackjack.Result
		err := m.store.WithTable(r.Context(), uuid, func(tbl *table.Table) error {
			if pp.Action == blackjack.ActionNewHand.String() && tbl.State.Phase == blackjack.PhasePlaying {
				res = &blackjack.Result{
					Action:   blackjack.ActionNewHand,
					State:    tbl.State,
					Events:   []blackjack.Event{},
					Rejected: true,
					Message:  finishHandFirstMessage,
				}
				return nil
			}

			var err error
			if res, err = m.engine.Apply(tbl.State, pp.payloadIn()); err != nil {
				return err
			}

			tbl.State = res.State
			return nil
		})

		if err != nil {
			if errors.Is(err, table.ErrTableNotFound) {
				writeMaybeNotFoundError(w, err)
			} else {
				writeEngineError(w, err)
			}
			return
		}

		resp := m.newTableActionResponse(res)

		if res.Resolution != nil {
			hand := table.NewHandRecord(uuid, res.Resolution, res.State.PlayerChips)
			if err := m.store.RecordHand(r.Context(), hand); err != nil {
				// the state is already saved, so the player still gets their result
				logrus.WithError(err).WithField("uuid", uuid).Error("could not record hand")
			}
		}

		if !res.Rejected {
			logMessage := playable.SimpleLogMessage("%s", resp.Narration)
			logMessage.Data = resp.View

			m.pitBoss.Broadcast(uuid, &playable.Response{
				Key:   "events",
				Value: uuid,
				Data:  res.Events,
			}, logMessage)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func (m *Mux) getTableUUIDHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		hands, err := m.store.GetHands(r.Context(), tableFromContext(r).UUID, offset, limit)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, hands)
	}
}
