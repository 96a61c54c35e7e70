package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sandevgo/roster/internal/service/input"
	"github.com/sandevgo/roster/internal/service/numeric"
	"github.com/spf13/cobra"
)

const (
	defaultPrimeLimit = 1000
	maxPrimeLimit     = 10_000_000
	primeColumn       = 6
	primeLineWidth    = 80
)

var checkPrime string

var primesCmd = &cobra.Command{
	Use:   "primes [limit]",
	Short: "List primes with the sieve of Eratosthenes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if checkPrime != "" {
			n, err := input.ParseInt(checkPrime)
			if err != nil {
				return err
			}
			verdict := "is not prime"
			if n > 0 && numeric.IsPrime(uint64(n)) {
				verdict = "is prime"
			}
			fmt.Fprintf(out, "%d %s\n", n, verdict)
			return nil
		}

		limit := int64(defaultPrimeLimit)
		if len(args) == 1 {
			var err error
			if limit, err = input.ParseInt(args[0]); err != nil {
				return err
			}
		}
		if limit < 0 || limit > maxPrimeLimit {
			return fmt.Errorf("limit must be within 0..%d", maxPrimeLimit)
		}

		fmt.Fprintf(out, "Primes up to %d\n", limit)
		fmt.Fprintln(out, strings.Repeat("-", primeLineWidth+primeColumn-2))
		writePrimeColumns(out, numeric.Primes(int(limit)))
		return nil
	},
}

// writePrimeColumns right-aligns each prime in a column and breaks the line once it passes the width.
func writePrimeColumns(out io.Writer, primes []int) {
	var line strings.Builder
	for _, p := range primes {
		fmt.Fprintf(&line, "%*d", primeColumn, p)
		if line.Len() > primeLineWidth {
			fmt.Fprintln(out, line.String())
			line.Reset()
		}
	}
	if line.Len() > 0 {
		fmt.Fprintln(out, line.String())
	}
}

func init() {
	primesCmd.Flags().StringVar(&checkPrime, "check", "", "test a single number by trial division instead")
	rootCmd.AddCommand(primesCmd)
}
