package main

import (
	"fmt"
	"io"

	"github.com/sandevgo/roster/internal/service/input"
	"github.com/sandevgo/roster/internal/service/numeric"
	"github.com/spf13/cobra"
)

var tempCmd = &cobra.Command{
	Use:   "temp",
	Short: "Convert a temperature between Fahrenheit and Celsius",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReader(cmd, func(r *input.Reader, out io.Writer) error {
			ctx := cmd.Context()

			t, err := r.AskFloat(ctx, "Enter temperature in degrees: ", nil)
			if err != nil {
				return err
			}
			scale, err := r.AskChoice(ctx, "Enter scale (F or C): ", []string{numeric.Fahrenheit, numeric.Celsius}, true)
			if err != nil {
				return err
			}

			converted, target, err := numeric.Convert(t, scale)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s°%s = %s°%s\n", input.FormatFloat(t), scale, input.FormatFloat(converted), target)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(tempCmd)
}
