package mux

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blackjackdealer-server/pkg/playable/blackjack"
	"blackjackdealer-server/pkg/table"

	"github.com/stretchr/testify/assert"
)

func Test_parsePaginationOptions(t *testing.T) {
	req := func(queryString string) *http.Request {
		req, _ := http.NewRequest(http.MethodGet, "https://example.domain/"+queryString, nil)
		return req
	}

	start, rows, err := parsePaginationOptions(req(""))
	assert.NoError(t, err)
	assert.Equal(t, int64(0), start)
	assert.Equal(t, defaultRows, rows)

	start, rows, err = parsePaginationOptions(req("?start=10&rows=25"))
	assert.NoError(t, err)
	assert.Equal(t, int64(10), start)
	assert.Equal(t, 25, rows)

	start, rows, err = parsePaginationOptions(req("?start=-1&rows=25"))
	assert.EqualError(t, err, "start cannot be less than zero")
	assert.Equal(t, int64(0), start)
	assert.Equal(t, 0, rows)

	start, rows, err = parsePaginationOptions(req("?start=0&rows=0"))
	assert.EqualError(t, err, "rows must be greater than zero")
	assert.Equal(t, int64(0), start)
	assert.Equal(t, 0, rows)

	start, rows, err = parsePaginationOptions(req(fmt.Sprintf("?start=0&rows=%d", maxRows+1)))
	assert.EqualError(t, err, fmt.Sprintf("rows cannot be greater than %d", maxRows))
	assert.Equal(t, int64(0), start)
	assert.Equal(t, 0, rows)
}

func Test_decodeRequest(t *testing.T) {
	a := assert.New(t)

	var payload actionPayload
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"action":"place_bet","amount":25}`))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")
	w := httptest.NewRecorder()
	a.True(decodeRequest(w, r, &payload))
	a.Equal("place_bet", payload.Action)
	a.Equal(25, *payload.Amount)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	w = httptest.NewRecorder()
	a.False(decodeRequest(w, r, &payload))
	a.Equal(http.StatusUnsupportedMediaType, w.Code)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	r.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	a.False(decodeRequest(w, r, &payload))
	a.Equal(http.StatusBadRequest, w.Code)
}

func Test_writeEngineError(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: %q", blackjack.ErrUnknownAction, "split"), http.StatusBadRequest},
		{fmt.Errorf("%w: missing deck", blackjack.ErrCorruptState), http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, test := range tests {
		w := httptest.NewRecorder()
		writeEngineError(w, test.err)
		assert.Equal(t, test.code, w.Code, test.err.Error())
	}

	w := httptest.NewRecorder()
	writeMaybeNotFoundError(w, table.ErrTableNotFound)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	writeMaybeNotFoundError(w, fmt.Errorf("lookup: %w", table.ErrNotTableOwner))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	writeMaybeNotFoundError(w, errors.New("connection reset"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}
