package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/sandevgo/roster/internal/service/input"
	"github.com/sandevgo/roster/internal/service/numeric"
	"github.com/spf13/cobra"
)

var fibCmd = &cobra.Command{
	Use:   "fib [n]",
	Short: "Print the n-th Fibonacci number",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			n, err := input.ParseInt(args[0])
			if err != nil {
				return err
			}
			return printFibonacci(cmd.OutOrStdout(), n)
		}

		return withReader(cmd, func(r *input.Reader, out io.Writer) error {
			n, err := r.AskInt(cmd.Context(), "Please enter a non-negative integer: ", input.IntBetween(0, numeric.MaxFibonacci))
			if err != nil {
				return err
			}
			return printFibonacci(out, n)
		})
	},
}

func printFibonacci(out io.Writer, n int64) error {
	if n < 0 || n > numeric.MaxFibonacci {
		return fmt.Errorf("%w: want 0..%d", numeric.ErrOutOfRange, numeric.MaxFibonacci)
	}
	f, err := numeric.NewFibonacci().Of(int(n))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "F(%d) = %s\n", n, humanize.BigComma(f))
	return nil
}

func init() {
	rootCmd.AddCommand(fibCmd)
}
