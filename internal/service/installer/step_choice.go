package installer

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ChoiceStep is a cursor-driven pick from a fixed list of options
type ChoiceStep struct {
	title   string
	choices []string
	cursor  int
	apply   func(state *InstallState, choice string)
}

func newChoiceStep(title string, choices []string, current string, apply func(*InstallState, string)) *ChoiceStep {
	return &ChoiceStep{
		title:   title,
		choices: choices,
		cursor:  max(slices.Index(choices, current), 0),
		apply:   apply,
	}
}

// NewBannerStep asks whether the session prints the command summary on start.
func NewBannerStep(current bool) Step {
	selected := "No"
	if current {
		selected = "Yes"
	}
	return newChoiceStep("Show the command summary when a session starts?", []string{"Yes", "No"}, selected,
		func(state *InstallState, choice string) {
			state.Config.Banner = choice == "Yes"
		})
}

// NewLogLevelStep picks the zerolog level written to stderr.
func NewLogLevelStep(current string) Step {
	levels := []string{"trace", "debug", "info", "warn", "error", "disabled"}
	return newChoiceStep("Select the log level:", levels, current,
		func(state *InstallState, choice string) {
			state.Config.LogLevel = choice
		})
}

func (s *ChoiceStep) Init() tea.Cmd {
	return nil
}

func (s *ChoiceStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			s.apply(state, s.choices[s.cursor])
			return nil, nil
		}
	}
	return s, nil
}

func (s *ChoiceStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString(s.title + "\n\n")
	for i, choice := range s.choices {
		if s.cursor == i {
			b.WriteString(selStyle.Render(fmt.Sprintf("❯ %s", choice)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", choice)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
