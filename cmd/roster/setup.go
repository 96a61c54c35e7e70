package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/roster/internal/core"
	"github.com/sandevgo/roster/internal/service/input"
	"github.com/sandevgo/roster/internal/transport/cli"
	"github.com/sandevgo/roster/pkg/log"
	"github.com/spf13/cobra"
)

// initEnv loads <runtimePath>/.env when it exists and returns its path, or "" if absent.
// Variables already set in the environment win over the file.
func initEnv(runtimePath string) (string, error) {
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	if err := godotenv.Load(envFile); err != nil {
		return "", fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	return envFile, nil
}

func openConsole(cmd *cobra.Command) (*cli.Console, error) {
	stdin, ok := cmd.InOrStdin().(io.ReadCloser)
	if !ok {
		stdin = io.NopCloser(cmd.InOrStdin())
	}
	return cli.NewReadLine(appCfg, stdin, cmd.OutOrStdout())
}

// withReader opens the console, hands an input.Reader to fn and closes the console after.
// Running out of input ends the command quietly, like the directory session does.
func withReader(cmd *cobra.Command, fn func(r *input.Reader, out io.Writer) error) error {
	console, err := openConsole(cmd)
	if err != nil {
		return err
	}
	defer console.Shutdown(cmd.Context())

	err = fn(input.NewReader(console, appCfg.MaxAttempts), console.Out())
	if errors.Is(err, core.ErrEndOfInput) {
		log.FromCtx(cmd.Context()).Debug().Str("command", cmd.Name()).Msg("input ended")
		return nil
	}
	return err
}
