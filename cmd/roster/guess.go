package main

import (
	"io"
	"math/rand/v2"

	"github.com/sandevgo/roster/internal/service/game"
	"github.com/sandevgo/roster/internal/service/input"
	"github.com/sandevgo/roster/pkg/log"
	"github.com/spf13/cobra"
)

var guessCmd = &cobra.Command{
	Use:   "guess",
	Short: "Guess a number between 1 and 100",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReader(cmd, func(r *input.Reader, out io.Writer) error {
			secret := rand.Int64N(game.MaxSecret-game.MinSecret+1) + game.MinSecret
			guesses, won, err := game.NewGuess(r, out, secret).Play(cmd.Context())
			log.FromCtx(cmd.Context()).Debug().Int("guesses", guesses).Bool("won", won).Msg("game over")
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(guessCmd)
}
