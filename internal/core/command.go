package core

import "context"

// Command is a single parsed input line. Implementations are immutable values.
type Command interface {
	Name() string
}

type CmdRouter interface {
	Execute(ctx context.Context, input string) (output []string, quit bool)
	Usage() []string
	Farewell() string
}
