package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type Operation = func() error

// ErrAttemptsExhausted is returned, wrapping the last error, when MaxAttempts is reached.
var ErrAttemptsExhausted = errors.New("attempts exhausted")

type Config struct {
	// MaxAttempts of zero retries until the operation succeeds or stops.
	MaxAttempts int
	Delay       time.Duration
	// OnRetry is called after every failed attempt that will be retried.
	OnRetry func(attempt int, err error)
}

func NewDefaultConfig() *Config {
	return &Config{}
}

type Retrier struct {
	config *Config
}

func NewRetrier(config *Config) *Retrier {
	return &Retrier{
		config: config,
	}
}

func NewDefaultRetrier() *Retrier {
	return NewRetrier(NewDefaultConfig())
}

type stopError struct {
	err error
}

func (s *stopError) Error() string { return s.err.Error() }
func (s *stopError) Unwrap() error { return s.err }

// Stop marks err as final: Do returns it unwrapped without another attempt.
func Stop(err error) error {
	if err == nil {
		return nil
	}
	return &stopError{err: err}
}

func (r *Retrier) Do(ctx context.Context, op Operation) error {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := op()
		if err == nil {
			return nil
		}

		var stop *stopError
		if errors.As(err, &stop) {
			return stop.err
		}

		if r.config.MaxAttempts > 0 && attempt >= r.config.MaxAttempts {
			return fmt.Errorf("%w after %d attempts: %w", ErrAttemptsExhausted, attempt, err)
		}

		if r.config.OnRetry != nil {
			r.config.OnRetry(attempt, err)
		}

		if r.config.Delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.config.Delay):
			}
		}
	}
}
