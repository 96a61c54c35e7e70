package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/roster/internal/config"
	"github.com/sandevgo/roster/internal/service/installer"
	"github.com/sandevgo/roster/pkg/log"
	"github.com/spf13/cobra"
)

var overwriteEnv bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write console settings to the runtime .env file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.FromCtx(cmd.Context())
		runtimePath := config.GetRuntimePath()

		state, err := installer.RunWizard(*appCfg, runtimePath, overwriteEnv,
			tea.WithAltScreen(),
			tea.WithContext(cmd.Context()),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		)
		if err != nil {
			return err
		}

		logger.Info().Str("path", state.EnvPath).Msg("configuration saved")
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s. Run 'roster' to start a session.\n", state.EnvPath)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&overwriteEnv, "force", "f", false, "replace an existing .env file")
	rootCmd.AddCommand(initCmd)
}
