package main

import (
	"bytes"
	"strings"
	"testing"

	"blackjackdealer-server/internal/rng"
	"blackjackdealer-server/pkg/playable/blackjack"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func Test_play(t *testing.T) {
	a := assert.New(t)

	engine, err := blackjack.NewEngine(logrus.StandardLogger(), rng.NewSeeded(1), blackjack.DefaultOptions())
	a.NoError(err)

	var out bytes.Buffer
	in := strings.NewReader("bet 5\nbet 25\nsplit\nstand\nquit\nhit\n")
	a.NoError(play(engine, in, &out, false))

	a.Contains(out.String(), "Minimum bet is 10 chips at this table.\n")
	a.Contains(out.String(), "Perfect! You've bet 25 chips. You have 975 chips remaining.")
	a.Contains(out.String(), `unknown command "split"`)
	a.NotContains(out.String(), "You can't hit right now")
}

func Test_play_endOfInput(t *testing.T) {
	engine, err := blackjack.NewEngine(logrus.StandardLogger(), rng.NewSeeded(1), blackjack.DefaultOptions())
	assert.NoError(t, err)

	var out bytes.Buffer
	assert.NoError(t, play(engine, strings.NewReader("new"), &out, false))
	assert.Equal(t, "Starting a new hand. You have 1000 chips.\n", out.String())
}

func Test_parseCommand(t *testing.T) {
	a := assert.New(t)

	p, err := parseCommand("BET 50")
	a.NoError(err)
	a.Equal("place_bet", p.Action)
	a.Equal(50, p.AdditionalData["amount"])

	p, err = parseCommand("bet")
	a.NoError(err)
	_, ok := p.AdditionalData.GetInt("amount")
	a.False(ok)

	p, err = parseCommand("double")
	a.NoError(err)
	a.Equal("double_down", p.Action)

	_, err = parseCommand("bet lots")
	a.EqualError(err, `could not parse bet "lots"`)

	_, err = parseCommand("   ")
	a.Error(err)
}
