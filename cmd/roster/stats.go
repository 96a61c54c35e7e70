package main

import (
	"fmt"

	"github.com/sandevgo/roster/internal/service/input"
	"github.com/sandevgo/roster/internal/service/numeric"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats n...",
	Short: "Print the median and mode of a list of integers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums := make([]int, 0, len(args))
		for _, a := range args {
			n, err := input.ParseInt(a)
			if err != nil {
				return err
			}
			nums = append(nums, int(n))
		}

		median, err := numeric.Median(nums)
		if err != nil {
			return err
		}
		mode, err := numeric.Mode(nums)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Numbers: %v\n", nums)
		fmt.Fprintf(out, "Mode = %d\n", mode)
		fmt.Fprintf(out, "Median = %d\n", median)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
