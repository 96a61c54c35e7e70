package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/roster/internal/service/command"
	"github.com/sandevgo/roster/internal/service/session"
	"github.com/sandevgo/roster/internal/storage/memory"
	"github.com/sandevgo/roster/pkg/srv"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive directory session",
	Long: `Reads commands one line at a time until 'Quit' or end of input:
  Add <name> to <department>
  List <department>
  All
  Quit`,
	RunE: runSession,
}

func runSession(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)

	console, err := openConsole(cmd)
	if err != nil {
		stop()
		return err
	}

	sess := session.New(
		console,
		command.New(memory.NewDirectory()),
		console.Out(),
		session.Options{
			Prompt: appCfg.Prompt,
			Banner: appCfg.Banner,
		},
	)

	// Shut down in reverse: the session, then the console, then the signal handler.
	release := srv.NewCleanup(func() error {
		stop()
		return nil
	})
	return srv.Run(ctx, release, console, sess)
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
