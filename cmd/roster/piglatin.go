package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sandevgo/roster/internal/service/input"
	"github.com/sandevgo/roster/internal/service/words"
	"github.com/spf13/cobra"
)

var pigLatinCmd = &cobra.Command{
	Use:   "piglatin [word...]",
	Short: "Translate words into pig latin",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), words.PigLatinText(strings.Join(args, " ")))
			return nil
		}

		return withReader(cmd, func(r *input.Reader, out io.Writer) error {
			text, err := r.Text("Enter a word, and I'll translate it into pig-latin: ", false)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, words.PigLatinText(text))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(pigLatinCmd)
}
