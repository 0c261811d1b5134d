package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"blackjackdealer-server/internal/config"
	"blackjackdealer-server/internal/jwt"
	"blackjackdealer-server/internal/rng"
	"blackjackdealer-server/internal/util"
	"blackjackdealer-server/pkg/playable"
	"blackjackdealer-server/pkg/playable/blackjack"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var command = flag.String("c", "token", "specifies the command (token, play)")
var callerID = flag.String("caller", "", "the caller ID to sign a token for (default: random)")

func main() {
	flag.Parse()

	switch *command {
	case "token":
		jwt.LoadKeys()

		id := *callerID
		if id == "" {
			id = util.RandomCallerID()
		}

		signed, err := jwt.Sign(id)
		if err != nil {
			logrus.WithError(err).Fatal("could not sign token")
		}

		_, _ = fmt.Fprintf(os.Stderr, "Caller: %s\n", id)
		fmt.Println(signed)
	case "play":
		logrus.SetLevel(logrus.WarnLevel)

		engine, err := blackjack.NewEngine(logrus.StandardLogger(), rng.Crypto{}, config.Instance().Game)
		if err != nil {
			logrus.WithError(err).Fatal("could not create engine")
		}

		if err := play(engine, os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdin.Fd()))); err != nil {
			logrus.WithError(err).Fatal("game stopped")
		}
	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

// play runs a console game until the input ends, the player quits, or the chips run out
func play(engine *blackjack.Engine, in io.Reader, out io.Writer, interactive bool) error {
	reader := bufio.NewReader(in)

	var state *blackjack.GameState
	for {
		if interactive {
			_, _ = fmt.Fprint(out, "\n(bet <n>, hit, stand, double, new, quit)> ")
		}

		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "quit" || (line == "" && err == io.EOF) {
			return nil
		}

		payload, perr := parseCommand(line)
		if perr != nil {
			_, _ = fmt.Fprintln(out, perr)
		} else {
			res, aerr := engine.Apply(state, payload)
			if aerr != nil {
				return aerr
			}

			state = res.State
			_, _ = fmt.Fprintln(out, blackjack.Narrate(res, engine.Options()))

			if res.Step != nil && *res.Step == blackjack.StepGameOver {
				return nil
			}
		}

		if err == io.EOF {
			return nil
		}
	}
}

func parseCommand(line string) (*playable.PayloadIn, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errors.New("what would you like to do?")
	}

	switch strings.ToLower(fields[0]) {
	case "bet":
		if len(fields) != 2 {
			return playable.NewPayload(blackjack.ActionPlaceBet.String()), nil
		}

		amount, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("could not parse bet %q", fields[1])
		}

		return playable.NewPayload(blackjack.ActionPlaceBet.String(), "amount", amount), nil
	case "hit":
		return playable.NewPayload(blackjack.ActionHit.String()), nil
	case "stand":
		return playable.NewPayload(blackjack.ActionStand.String()), nil
	case "double":
		return playable.NewPayload(blackjack.ActionDoubleDown.String()), nil
	case "new":
		return playable.NewPayload(blackjack.ActionNewHand.String()), nil
	}

	return nil, fmt.Errorf("unknown command %q", fields[0])
}
