package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/sandevgo/roster/internal/config"
	"github.com/sandevgo/roster/internal/core"
)

// LineSource is the part of *readline.Instance the console uses.
type LineSource interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Console reads trimmed lines from a LineSource and writes output lines to out.
type Console struct {
	src    LineSource
	out    io.Writer
	closer io.Closer

	// echoPrompt writes the prompt to out before each read. readline only draws
	// prompts on a terminal, so piped input needs it.
	echoPrompt bool

	closeOnce sync.Once
	closeErr  error
	done      chan struct{}
}

// NewReadLine opens a readline console on stdin/stdout. History is kept in memory only.
func NewReadLine(cfg *config.AppConfig, stdin io.ReadCloser, stdout io.Writer) (*Console, error) {
	interactive := isTerminal(stdin)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryLimit:    -1,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
		// Close must be able to interrupt a pending read on a pipe.
		Stdin:          readline.NewCancelableStdin(stdin),
		Stdout:         stdout,
		FuncIsTerminal: func() bool { return interactive },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open console: %w", err)
	}

	return &Console{
		src:        rl,
		out:        rl.Stdout(),
		closer:     rl,
		echoPrompt: !interactive,
		done:       make(chan struct{}),
	}, nil
}

func NewConsole(src LineSource, out io.Writer) *Console {
	return &Console{
		src:  src,
		out:  out,
		done: make(chan struct{}),
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && readline.IsTerminal(int(f.Fd()))
}

// ReadLine shows prompt and blocks for one line. End of the stream and Ctrl+C on an
// empty line both map to core.ErrEndOfInput.
func (c *Console) ReadLine(prompt string) (string, error) {
	c.src.SetPrompt(prompt)
	if c.echoPrompt && prompt != "" {
		fmt.Fprint(c.out, prompt)
	}

	line, err := c.src.Readline()
	if err != nil {
		switch {
		case errors.Is(err, io.EOF):
			return "", core.ErrEndOfInput
		case errors.Is(err, readline.ErrInterrupt):
			if len(line) == 0 {
				return "", core.ErrEndOfInput
			}
			// interrupted mid-line: discard it and read again
			return c.ReadLine(prompt)
		}
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func (c *Console) Out() io.Writer {
	return c.out
}

// Start closes the console once ctx is cancelled, which unblocks a pending ReadLine
// with end of input.
func (c *Console) Start(ctx context.Context) error {
	go func() {
		select {
		case <-ctx.Done():
			_ = c.close()
		case <-c.done:
		}
	}()
	return nil
}

func (c *Console) Shutdown(ctx context.Context) error {
	return c.close()
}

func (c *Console) close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		if c.closer != nil {
			c.closeErr = c.closer.Close()
		}
	})
	return c.closeErr
}
