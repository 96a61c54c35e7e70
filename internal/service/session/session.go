package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sandevgo/roster/internal/core"
	"github.com/sandevgo/roster/pkg/log"
)

type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Options struct {
	Prompt string
	Banner bool
}

// Session reads lines one at a time, runs them through the router and prints the
// result, until Quit, end of input or context cancellation.
type Session struct {
	lines  core.LineReader
	router core.CmdRouter
	out    io.Writer
	opts   Options
	state  State
}

func New(lines core.LineReader, router core.CmdRouter, out io.Writer, opts Options) *Session {
	return &Session{
		lines:  lines,
		router: router,
		out:    out,
		opts:   opts,
		state:  Running,
	}
}

func (s *Session) State() State {
	return s.state
}

// Start runs the loop to completion. It returns nil on Quit and end of input; any
// other read error is returned after the farewell is printed.
func (s *Session) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("session started")

	if s.opts.Banner {
		s.println(s.router.Usage()...)
	}

	err := s.loop(ctx)
	s.state = Terminated
	s.println(s.router.Farewell())

	logger.Info().Msg("session terminated")
	return err
}

func (s *Session) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := s.lines.ReadLine(s.opts.Prompt)
		if errors.Is(err, core.ErrEndOfInput) || (err != nil && ctx.Err() != nil) {
			// a cancelled context closes the console under a pending read
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		output, quit := s.router.Execute(ctx, line)
		s.println(output...)
		if quit {
			return nil
		}
	}
}

func (s *Session) Shutdown(ctx context.Context) error {
	return nil
}

func (s *Session) println(lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(s.out, l)
	}
}
