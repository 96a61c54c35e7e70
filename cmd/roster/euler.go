package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/sandevgo/roster/internal/service/euler"
	"github.com/sandevgo/roster/internal/service/input"
	"github.com/sandevgo/roster/pkg/log"
	"github.com/spf13/cobra"
)

var digitsFile string

var eulerCmd = &cobra.Command{
	Use:   "euler [problem...]",
	Short: "Solve Project Euler problems 1-8",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.FromCtx(cmd.Context())

		problems := euler.Problems()
		if len(args) > 0 {
			problems = problems[:0:0]
			for _, a := range args {
				id, err := input.ParseInt(a)
				if err != nil {
					return err
				}
				p, err := euler.Find(int(id))
				if err != nil {
					return err
				}
				problems = append(problems, p)
			}
		}

		var digits string
		if digitsFile != "" {
			b, err := os.ReadFile(digitsFile)
			if err != nil {
				return fmt.Errorf("read digits: %w", err)
			}
			digits = string(b)
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Problem", "Title", "Answer"})
		table.SetAutoWrapText(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetBorder(false)

		for _, p := range problems {
			answer, err := p.Solve(digits)
			cell := humanize.Comma(answer)
			if err != nil {
				logger.Debug().Err(err).Int("problem", p.ID).Msg("not solved")
				cell = "needs --digits"
				if digitsFile != "" {
					cell = err.Error()
				}
			}
			table.Append([]string{strconv.Itoa(p.ID), p.Title, cell})
		}
		table.Render()
		return nil
	},
}

func init() {
	eulerCmd.Flags().StringVar(&digitsFile, "digits", "", "file with the 1000-digit number for problem 8")
	rootCmd.AddCommand(eulerCmd)
}
