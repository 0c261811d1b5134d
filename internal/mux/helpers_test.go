package mux

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"blackjackdealer-server/internal/jwt"
	"blackjackdealer-server/internal/rng"
	"blackjackdealer-server/internal/util"
	"blackjackdealer-server/pkg/deck"
	"blackjackdealer-server/pkg/playable/blackjack"
	"blackjackdealer-server/pkg/table"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var setupJWTOnce sync.Once

func setupJWT() {
	setupJWTOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}

		jwt.SetKeys(&key.PublicKey, key)
	})
}

// caller returns a new caller identity and a signed token for it
func caller() (string, string) {
	setupJWT()

	id := util.RandomCallerID()
	j, err := jwt.Sign(id)
	if err != nil {
		panic(err)
	}

	return id, j
}

func newTestMux(t *testing.T) (*Mux, *table.MemoryStore) {
	t.Helper()
	setupJWT()

	engine, err := blackjack.NewEngine(logrus.StandardLogger(), rng.NewSeeded(1), blackjack.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	store := table.NewMemoryStore()
	m := NewMux("", store, engine)
	t.Cleanup(m.Close)

	return m, store
}

func newTestServer(t *testing.T) (*httptest.Server, *table.MemoryStore) {
	t.Helper()

	m, store := newTestMux(t)
	ts := httptest.NewServer(m)
	t.Cleanup(ts.Close)

	return ts, store
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int, signedJWT ...string) *http.Response {
	t.Helper()

	if len(signedJWT) > 0 {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", signedJWT[0]))
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := io.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGetWithResp(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int, signedJWT ...string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return nil
	}

	return assertDo(t, req, respObj, statusCode, signedJWT...)
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int, signedJWT ...string) {
	t.Helper()
	_ = assertGetWithResp(t, ts, path, respObj, statusCode, signedJWT...)
}

func assertPostWithResp(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int, signedJWT ...string) *http.Response {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return nil
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	return assertDo(t, req, respObj, statusCode, signedJWT...)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int, signedJWT ...string) {
	t.Helper()
	_ = assertPostWithResp(t, ts, path, payload, respObj, statusCode, signedJWT...)
}

// stackedState returns a new game whose deck deals the listed cards first
func stackedState(cards string) *blackjack.GameState {
	top := deck.CardsFromString(cards)
	onTop := make(map[string]bool, len(top))
	for _, card := range top {
		onTop[card.String()] = true
	}

	rest := make([]*deck.Card, 0, deck.Size)
	for _, card := range deck.New().Cards {
		if !onTop[card.String()] {
			rest = append(rest, card)
		}
	}

	for i := len(top) - 1; i >= 0; i-- {
		rest = append(rest, top[i])
	}

	s := blackjack.NewGameState(blackjack.DefaultOptions())
	s.Deck = &deck.Deck{Cards: rest}
	return s
}

// engineTestResponse mirrors engineResponse in a form that can be decoded
type engineTestResponse struct {
	State      *blackjack.GameState     `json:"state"`
	View       map[string]interface{}   `json:"view"`
	Events     []map[string]interface{} `json:"events"`
	Narration  string                   `json:"narration"`
	Step       *string                  `json:"step"`
	Resolution *struct {
		Outcome string `json:"outcome"`
		Bet     int    `json:"bet"`
		Payout  int    `json:"payout"`
	} `json:"resolution"`
	Rejected         bool   `json:"rejected"`
	Message          string `json:"message"`
	CardImageBaseURL string `json:"cardImageBaseUrl"`
}

func eventTypes(events []map[string]interface{}) []string {
	types := make([]string, len(events))
	for i, event := range events {
		types[i], _ = event["type"].(string)
	}

	return types
}
