package command

import (
	"context"
	"errors"

	"github.com/sandevgo/roster/internal/core"
	"github.com/sandevgo/roster/pkg/log"
)

// Router interprets input lines and applies them to a Directory.
type Router struct {
	dir       core.Directory
	formatter *ResponseFormatter
}

func New(dir core.Directory) *Router {
	return &Router{
		dir:       dir,
		formatter: NewResponseFormatter(),
	}
}

// Execute parses input, dispatches it and returns the lines to print.
// quit is true only for the Quit command.
func (r *Router) Execute(ctx context.Context, input string) ([]string, bool) {
	return r.Dispatch(ctx, Parse(input))
}

func (r *Router) Dispatch(ctx context.Context, cmd core.Command) ([]string, bool) {
	logger := log.FromCtx(ctx)
	logger.Debug().Str("command", cmd.Name()).Msg("dispatching")

	switch c := cmd.(type) {
	case Add:
		r.dir.Add(c.Group, c.Member)
		logger.Debug().Str("group", c.Group).Str("member", c.Member).Msg("member added")
		return nil, false

	case ListGroup:
		members, err := r.dir.List(c.Group)
		if errors.Is(err, core.ErrGroupNotFound) {
			return []string{r.formatter.UnknownGroup()}, false
		}
		return r.formatter.Members(c.Group, members), false

	case ListAll:
		var lines []string
		for _, g := range r.dir.ListAll() {
			lines = append(lines, r.formatter.Members(g.Group, g.Members)...)
		}
		return lines, false

	case Quit:
		return nil, true

	default:
		logger.Debug().Err(core.ErrUnrecognizedCommand).Str("input", inputOf(cmd)).Send()
		return []string{r.formatter.InputError()}, false
	}
}

func (r *Router) Farewell() string {
	return r.formatter.Farewell()
}

func inputOf(cmd core.Command) string {
	if inv, ok := cmd.(Invalid); ok {
		return inv.Input
	}
	return cmd.Name()
}

func (r *Router) Usage() []string {
	return Usage()
}
