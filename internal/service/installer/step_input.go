package installer

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/roster/internal/service/input"
)

// PromptStep collects the text printed before every session read
type PromptStep struct {
	input textinput.Model
}

func NewPromptStep(current string) Step {
	ti := textinput.New()
	ti.Placeholder = "empty for no prompt"
	ti.CharLimit = 32
	ti.Width = 32
	ti.SetValue(current)
	ti.Focus()
	return &PromptStep{input: ti}
}

func (s *PromptStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *PromptStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		// Kept untrimmed, a trailing space separates the prompt from the typed command.
		state.Config.Prompt = s.input.Value()
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PromptStep) View(state *InstallState) string {
	return fmt.Sprintf("Session prompt:\n\n%s\n\n(press enter to confirm)\n", s.input.View())
}

// AttemptsStep collects how many times a numeric question is re-asked
type AttemptsStep struct {
	input textinput.Model
	err   error
}

func NewAttemptsStep(current int) Step {
	ti := textinput.New()
	ti.Placeholder = "0 asks until the answer is valid"
	ti.CharLimit = 6
	ti.Width = 32
	ti.SetValue(strconv.Itoa(current))
	ti.Focus()
	return &AttemptsStep{input: ti}
}

func (s *AttemptsStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *AttemptsStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		n, err := input.ParseInt(s.input.Value())
		if err == nil && !input.NonNegativeInt(n) {
			err = fmt.Errorf("%w: must not be negative", input.ErrRejected)
		}
		if err != nil {
			s.err = err
			return s, nil
		}
		state.Config.MaxAttempts = int(n)
		return nil, nil
	}

	s.err = nil
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *AttemptsStep) View(state *InstallState) string {
	view := fmt.Sprintf("Re-prompt limit for numeric questions:\n\n%s\n", s.input.View())
	if s.err != nil {
		view += "\n" + errorStyle.Render(s.err.Error()) + "\n"
	}
	return view + "\n(press enter to confirm)\n"
}
