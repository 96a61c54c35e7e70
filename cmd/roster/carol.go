package main

import (
	"fmt"

	"github.com/sandevgo/roster/internal/service/words"
	"github.com/spf13/cobra"
)

var carolCmd = &cobra.Command{
	Use:   "carol",
	Short: "Print The Twelve Days of Christmas",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), words.Carol())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(carolCmd)
}
