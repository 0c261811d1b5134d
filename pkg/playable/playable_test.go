package playable

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimpleLogMessage(t *testing.T) {
	before := time.Now()
	lm := SimpleLogMessage("test %d", 5)
	assert.Equal(t, "test 5", lm.Message)
	assert.Len(t, lm.UUID, 36)
	assert.False(t, lm.Time.Before(before))
	assert.False(t, time.Now().Before(lm.Time))
	assert.Nil(t, lm.Data)
}

func TestAdditionalData_GetInt(t *testing.T) {
	a := assert.New(t)

	var data AdditionalData
	a.NoError(json.Unmarshal([]byte(`{"amount":25,"half":12.5,"name":"x"}`), &data))

	val, ok := data.GetInt("amount")
	a.True(ok)
	a.Equal(25, val)

	_, ok = data.GetInt("half")
	a.False(ok)

	_, ok = data.GetInt("name")
	a.False(ok)

	_, ok = data.GetInt("missing")
	a.False(ok)

	val, ok = AdditionalData{"amount": 40}.GetInt("amount")
	a.True(ok)
	a.Equal(40, val)

	val, ok = AdditionalData{"amount": json.Number("15")}.GetInt("amount")
	a.True(ok)
	a.Equal(15, val)
}

func TestAdditionalData_GetStringAndBool(t *testing.T) {
	a := assert.New(t)
	ad := AdditionalData{"s": "hello", "b": true}

	s, ok := ad.GetString("s")
	a.True(ok)
	a.Equal("hello", s)

	_, ok = ad.GetString("b")
	a.False(ok)

	b, ok := ad.GetBool("b")
	a.True(ok)
	a.True(b)

	_, ok = ad.GetBool("s")
	a.False(ok)
}

func TestNewPayload(t *testing.T) {
	p := NewPayload("place_bet", "amount", 25)
	assert.Equal(t, "place_bet", p.Action)
	amount, ok := p.AdditionalData.GetInt("amount")
	assert.True(t, ok)
	assert.Equal(t, 25, amount)

	assert.Panics(t, func() { NewPayload("hit", "amount") })
	assert.Panics(t, func() { NewPayload("hit", 1, 2) })
}
