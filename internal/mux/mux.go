package mux

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"blackjackdealer-server/internal/config"
	"blackjackdealer-server/internal/jwt"
	"blackjackdealer-server/pkg/playable/blackjack"
	"blackjackdealer-server/pkg/room"
	"blackjackdealer-server/pkg/table"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ctxKey int

const (
	ctxCallerKey ctxKey = iota
	ctxTableKey
)

const uuidPattern = `{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}`

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version          string
	cardImageBaseURL string
	store            table.Store
	engine           *blackjack.Engine
	pitBoss          *room.PitBoss

	// store for testing purposes
	authRouter *gmux.Router
}

// NewMux returns a new HTTP mux
func NewMux(version string, store table.Store, engine *blackjack.Engine) *Mux {
	pitBoss := room.NewPitBoss(logrus.StandardLogger())
	pitBoss.StartShift()

	this := &Mux{
		Router:           gmux.NewRouter(),
		version:          version,
		cardImageBaseURL: config.Instance().CardImageBaseURL,
		store:            store,
		engine:           engine,
		pitBoss:          pitBoss,
	}

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())

		// display surfaces authenticate with the table's display token
		r.Methods(http.MethodGet).Path("/table/" + uuidPattern + "/ws").Handler(this.getTableUUIDWS())
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	// requires bearer authorization
	{
		r := this.authRouter

		r.Methods(http.MethodPost).Path("/engine").Handler(this.postEngine())
		r.Methods(http.MethodPost).Path("/function").Handler(this.postFunction())

		r.Methods(http.MethodGet).Path("/table").Handler(this.getTable())
		r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())

		tr := r.PathPrefix("/table/" + uuidPattern).Subrouter()
		tr.Use(this.tableMiddleware)

		tr.Methods(http.MethodGet).Path("").Handler(this.getTableUUID())
		tr.Methods(http.MethodPost).Path("/action").Handler(this.postTableUUIDAction())
		tr.Methods(http.MethodGet).Path("/hand").Handler(this.getTableUUIDHand())
	}

	return this
}

// Close disconnects every display client
func (m *Mux) Close() {
	m.pitBoss.EndShift()
}

func (m *Mux) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		callerID, err := jwt.ValidCallerID(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxCallerKey, callerID)
		w.Header().Set("Blackjack-CallerID", callerID)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

// tableMiddleware requires authMiddleware to execute first
func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uuid := gmux.Vars(r)["uuid"]
		tbl, err := m.store.GetTableByUUID(r.Context(), uuid)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		if tbl.CallerID != callerID(r) {
			writeMaybeNotFoundError(w, table.ErrNotTableOwner)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxTableKey, tbl)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func callerID(r *http.Request) string {
	return r.Context().Value(ctxCallerKey).(string)
}

func tableFromContext(r *http.Request) *table.Table {
	return r.Context().Value(ctxTableKey).(*table.Table)
}

// writeEngineError maps engine failures onto status codes
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, blackjack.ErrUnknownAction):
		writeJSONError(w, http.StatusBadRequest, err)
	case errors.Is(err, blackjack.ErrCorruptState):
		writeJSONError(w, http.StatusUnprocessableEntity, err)
	default:
		writeJSONError(w, http.StatusInternalServerError, err)
	}
}
