package installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/roster/pkg/env"
)

var ErrEnvExists = errors.New(".env file already exists")

// SaveEnvStep writes the collected configuration to the .env file
type SaveEnvStep struct {
	err   error
	saved bool
}

func NewSaveEnvStep() Step {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if s.saved || s.err != nil {
		return s, nil
	}

	path, err := SaveEnv(state)
	if err != nil {
		s.err = err
		state.Err = err
		return s, nil
	}

	s.saved = true
	state.EnvPath = path
	return nil, nil
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	return "Saving configuration...\n"
}

// SaveEnv writes state.Config to <state.Dir>/.env and returns the file path.
// An existing file is only replaced when state.Overwrite is set.
func SaveEnv(state *InstallState) (string, error) {
	if err := os.MkdirAll(state.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create runtime directory: %w", err)
	}

	envPath := filepath.Join(state.Dir, ".env")
	if !state.Overwrite {
		if _, err := os.Stat(envPath); err == nil {
			return "", fmt.Errorf("%w at %s", ErrEnvExists, envPath)
		}
	}

	content, err := env.MarshalEnv(&state.Config)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		return "", err
	}
	return envPath, nil
}
