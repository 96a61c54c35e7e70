package installer

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/roster/internal/config"
	"github.com/sandevgo/roster/internal/core"
)

var ErrInterrupted = errors.New("roster setup interrupted")

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	itemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	selStyle   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Step represents a single step in the setup wizard
type Step interface {
	Init() tea.Cmd
	Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd)
	View(state *InstallState) string
}

func getSteps(state *InstallState) []Step {
	return []Step{
		NewPromptStep(state.Config.Prompt),
		NewBannerStep(state.Config.Banner),
		NewAttemptsStep(state.Config.MaxAttempts),
		NewLogLevelStep(state.Config.LogLevel),
		NewSaveEnvStep(),
	}
}

type nextMsg struct{}

// model is the main Bubble Tea model that orchestrates the steps
type model struct {
	steps       []Step
	currentStep int
	state       *InstallState
	quitting    bool
}

func initialModel(state *InstallState) model {
	return model{
		steps: getSteps(state),
		state: state,
	}
}

func (m model) Init() tea.Cmd {
	if len(m.steps) > 0 {
		return m.steps[0].Init()
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.done() {
		return m, tea.Quit
	}

	next, cmd := m.steps[m.currentStep].Update(msg, m.state)
	if next == nil {
		m.currentStep++
		if m.done() {
			return m, tea.Quit
		}
		return m, m.steps[m.currentStep].Init()
	}

	m.steps[m.currentStep] = next
	return m, cmd
}

func (m model) done() bool {
	return m.currentStep >= len(m.steps)
}

func (m model) View() string {
	if m.quitting {
		return "Setup cancelled.\n"
	}

	if m.done() {
		return fmt.Sprintf("Configuration written to %s\n", m.state.EnvPath)
	}

	progress := hintStyle.Render(fmt.Sprintf("step %d of %d", m.currentStep+1, len(m.steps)))
	return titleStyle.Render("Configuring "+core.RosterName) + "  " + progress + "\n\n" + m.steps[m.currentStep].View(m.state)
}

// RunWizard walks the user through the console settings, starting from cfg, and writes
// the result to <dir>/.env. It returns the state holding the saved configuration.
func RunWizard(cfg config.AppConfig, dir string, overwrite bool, opts ...tea.ProgramOption) (*InstallState, error) {
	p := tea.NewProgram(initialModel(NewInstallState(cfg, dir, overwrite)), opts...)
	m, err := p.Run()
	if err != nil {
		return nil, err
	}

	final := m.(model)
	if final.state.Err != nil {
		return nil, final.state.Err
	}
	if final.quitting || final.state.EnvPath == "" {
		return nil, ErrInterrupted
	}
	return final.state, nil
}
