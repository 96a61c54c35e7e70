package command

import (
	"strings"

	"github.com/sandevgo/roster/internal/core"
)

// arg marks a position in a rule shape that captures any single token.
const arg = ""

type rule struct {
	shape []string
	build func(args []string) core.Command
}

// rules are tried top to bottom; the first shape that matches wins.
var rules = []rule{
	{
		shape: []string{"All"},
		build: func([]string) core.Command { return ListAll{} },
	},
	{
		shape: []string{"Quit"},
		build: func([]string) core.Command { return Quit{} },
	},
	{
		shape: []string{"List", arg},
		build: func(args []string) core.Command { return ListGroup{Group: args[0]} },
	},
	{
		shape: []string{"Add", arg, "to", arg},
		build: func(args []string) core.Command { return Add{Member: args[0], Group: args[1]} },
	},
}

// Parse turns one line into a Command. Matching is exact, case-sensitive and positional.
func Parse(line string) core.Command {
	tokens := strings.Fields(line)
	for _, r := range rules {
		if args, ok := r.match(tokens); ok {
			return r.build(args)
		}
	}
	return Invalid{Input: line}
}

func (r rule) match(tokens []string) ([]string, bool) {
	if len(tokens) != len(r.shape) {
		return nil, false
	}

	var args []string
	for i, want := range r.shape {
		if want == arg {
			args = append(args, tokens[i])
			continue
		}
		if tokens[i] != want {
			return nil, false
		}
	}
	return args, true
}

// Usage lists the accepted command forms, one per line.
func Usage() []string {
	return []string{
		"Type 'Add <name> to <department>' to add an employee",
		"Type 'List <department>' to list the employees of a department",
		"Type 'All' to list all employees by department",
		"Type 'Quit' to quit",
	}
}
