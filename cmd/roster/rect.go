package main

import (
	"fmt"
	"io"

	"github.com/sandevgo/roster/internal/service/input"
	"github.com/sandevgo/roster/internal/service/numeric"
	"github.com/spf13/cobra"
)

var rectCmd = &cobra.Command{
	Use:   "rect",
	Short: "Compute the area of a rectangle",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withReader(cmd, func(r *input.Reader, out io.Writer) error {
			ctx := cmd.Context()

			w, err := r.AskFloat(ctx, "Enter width: ", input.NonNegativeFloat)
			if err != nil {
				return err
			}
			h, err := r.AskFloat(ctx, "Enter height: ", input.NonNegativeFloat)
			if err != nil {
				return err
			}

			writeRectangle(out, numeric.Rectangle{Width: w, Height: h})
			return nil
		})
	},
}

func writeRectangle(out io.Writer, rect numeric.Rectangle) {
	prefix := ""
	if !rect.Valid() {
		prefix = "Invalid "
	}
	fmt.Fprintf(out, "Rectangle %s x %s\n", input.FormatFloat(rect.Width), input.FormatFloat(rect.Height))
	fmt.Fprintf(out, "%sArea: %.2f\n", prefix, rect.Area())
}

func init() {
	rootCmd.AddCommand(rectCmd)
}
