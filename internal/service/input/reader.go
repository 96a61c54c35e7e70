// Package input coerces console lines into numbers and constrained text.
//
// Single-shot reads (Int, Float, Text) return a parse error wrapping core.ErrParse.
// The Ask variants keep re-prompting until a value is accepted; they give up only
// on core.ErrEndOfInput, a cancelled context, or the configured attempt limit.
// Validity is always reported as an error rather than an out-of-range sentinel, so
// negative numbers are ordinary values.
package input

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/sandevgo/roster/internal/core"
	"github.com/sandevgo/roster/pkg/log"
	"github.com/sandevgo/roster/pkg/retry"
)

// ErrRejected is returned by Ask when a well-formed value fails the caller's check.
var ErrRejected = errors.New("value rejected")

type Reader struct {
	lines       core.LineReader
	maxAttempts int
}

func NewReader(lines core.LineReader, maxAttempts int) *Reader {
	return &Reader{
		lines:       lines,
		maxAttempts: maxAttempts,
	}
}

func ParseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", core.ErrParse, s)
	}
	return n, nil
}

func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", core.ErrParse, s)
	}
	return f, nil
}

func FormatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (r *Reader) Int(prompt string) (int64, error) {
	line, err := r.lines.ReadLine(prompt)
	if err != nil {
		return 0, err
	}
	return ParseInt(line)
}

func (r *Reader) Float(prompt string) (float64, error) {
	line, err := r.lines.ReadLine(prompt)
	if err != nil {
		return 0, err
	}
	return ParseFloat(line)
}

// Text returns the trimmed line, upper-cased when upper is set.
func (r *Reader) Text(prompt string, upper bool) (string, error) {
	line, err := r.lines.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	if upper {
		return strings.ToUpper(line), nil
	}
	return line, nil
}

// AskInt re-prompts until the line is an integer that accept allows. A nil accept allows any.
func (r *Reader) AskInt(ctx context.Context, prompt string, accept func(int64) bool) (int64, error) {
	return ask(ctx, r, func() (int64, error) { return r.Int(prompt) }, accept)
}

func (r *Reader) AskFloat(ctx context.Context, prompt string, accept func(float64) bool) (float64, error) {
	return ask(ctx, r, func() (float64, error) { return r.Float(prompt) }, accept)
}

// AskChoice re-prompts until the (optionally upper-cased) line is one of choices.
func (r *Reader) AskChoice(ctx context.Context, prompt string, choices []string, upper bool) (string, error) {
	return ask(ctx, r, func() (string, error) { return r.Text(prompt, upper) }, func(s string) bool {
		return slices.Contains(choices, s)
	})
}

func ask[T any](ctx context.Context, r *Reader, read func() (T, error), accept func(T) bool) (T, error) {
	logger := log.FromCtx(ctx)
	retrier := retry.NewRetrier(&retry.Config{
		MaxAttempts: r.maxAttempts,
		OnRetry: func(attempt int, err error) {
			logger.Debug().Err(err).Int("attempt", attempt).Msg("asking again")
		},
	})

	var value T
	err := retrier.Do(ctx, func() error {
		v, err := read()
		switch {
		case errors.Is(err, core.ErrParse):
			return err
		case err != nil:
			return retry.Stop(err)
		case accept != nil && !accept(v):
			return fmt.Errorf("%w: %v", ErrRejected, v)
		}
		value = v
		return nil
	})
	return value, err
}

func NonNegativeInt(n int64) bool {
	return n >= 0
}

func NonNegativeFloat(f float64) bool {
	return f >= 0
}

func IntBetween(lo, hi int64) func(int64) bool {
	return func(n int64) bool {
		return n >= lo && n <= hi
	}
}
