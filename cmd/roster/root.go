package main

import (
	"os"

	"github.com/sandevgo/roster/internal/config"
	"github.com/sandevgo/roster/internal/core"
	"github.com/sandevgo/roster/internal/service/ui"
	"github.com/sandevgo/roster/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug  bool
	appCfg *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:     "roster",
	Short:   "A console employee directory",
	Long:    `Roster keeps a per-session directory of departments and their employees, driven by typed commands.`,
	Version: core.RosterVersion,
	// Without a subcommand roster starts the directory session.
	RunE:              runSession,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
	rootCmd.SetErrPrefix(ui.ErrorStyle.Render("Error:"))
}

// setup loads .env from the runtime directory, parses the config and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	envFile, err := initEnv(config.GetRuntimePath())
	if err != nil {
		return err
	}

	appCfg, err = config.Parse()
	if err != nil {
		return err
	}

	ctx := log.NewContextWithLogger(cmd.Context(), cmd.ErrOrStderr(), appCfg.LogLevel, debug || config.IsDebug())
	cmd.SetContext(ctx)

	if envFile != "" {
		log.FromCtx(ctx).Debug().Str("path", envFile).Msg("loaded .env file")
	}
	return nil
}

func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return ui.TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleUsage", func(s string) string { return ui.UsageStyle.Render(s) })
	cobra.AddTemplateFunc("StyleFlag", func(s string) string { return ui.FlagStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return ui.DescStyle.Render(s) })

	template := `
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if gt (len .Commands) 0}}
{{StyleTitle "AVAILABLE COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{StyleFlag (.LocalFlags.FlagUsages | trimTrailingWhitespaces)}}
{{end}}
`
	rootCmd.SetHelpTemplate(template)
}
