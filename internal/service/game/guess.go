package game

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sandevgo/roster/internal/core"
	"github.com/sandevgo/roster/internal/service/input"
	"github.com/sandevgo/roster/pkg/log"
)

const (
	MinSecret = 1
	MaxSecret = 100

	Prompt = "Please input your guess: "
)

type Guess struct {
	reader *input.Reader
	out    io.Writer
	secret int64
}

func NewGuess(reader *input.Reader, out io.Writer, secret int64) *Guess {
	return &Guess{
		reader: reader,
		out:    out,
		secret: secret,
	}
}

// Play asks for guesses until the secret is found and returns the number of guesses.
// Running out of input ends the game early with won == false and a nil error.
func (g *Guess) Play(ctx context.Context) (guesses int, won bool, err error) {
	fmt.Fprintln(g.out, "Guess the number!")

	for {
		// rejected or unparsable answers are asked again with the same prompt
		n, err := g.reader.AskInt(ctx, Prompt, input.IntBetween(MinSecret, MaxSecret))
		if errors.Is(err, core.ErrEndOfInput) {
			log.FromCtx(ctx).Debug().Int("guesses", guesses).Msg("input ended before a win")
			return guesses, false, nil
		}
		if err != nil {
			return guesses, false, err
		}

		guesses++
		fmt.Fprintf(g.out, "You guessed: %d\n", n)

		switch cmp.Compare(n, g.secret) {
		case -1:
			fmt.Fprintln(g.out, "Too small!")
		case 1:
			fmt.Fprintln(g.out, "Too big!")
		default:
			fmt.Fprintln(g.out, "You win!")
			return guesses, true, nil
		}
	}
}
