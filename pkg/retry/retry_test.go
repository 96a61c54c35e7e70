package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry_SuccessOnFirstTry(t *testing.T) {
	ctx := context.Background()
	retrier := NewDefaultRetrier()

	counter := 0
	err := retrier.Do(ctx, func() error {
		counter++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, counter)
}

func TestRetry_UnboundedUntilSuccess(t *testing.T) {
	ctx := context.Background()
	retrier := NewDefaultRetrier()

	counter := 0
	err := retrier.Do(ctx, func() error {
		counter++
		if counter < 25 {
			return errors.New("not yet")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 25, counter)
}

func TestRetry_MaxAttemptsExceeded(t *testing.T) {
	ctx := context.Background()
	retrier := NewRetrier(&Config{MaxAttempts: 3})

	expectedErr := errors.New("permanent error")
	counter := 0
	err := retrier.Do(ctx, func() error {
		counter++
		return expectedErr
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAttemptsExhausted)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 3, counter)
}

func TestRetry_StopEndsImmediately(t *testing.T) {
	ctx := context.Background()
	retrier := NewDefaultRetrier()

	final := errors.New("stream closed")
	counter := 0
	err := retrier.Do(ctx, func() error {
		counter++
		return Stop(final)
	})

	assert.Same(t, final, err)
	assert.Equal(t, 1, counter)
}

func TestRetry_StopNil(t *testing.T) {
	assert.NoError(t, Stop(nil))
}

func TestRetry_OnRetryReportsAttempts(t *testing.T) {
	ctx := context.Background()

	var seen []int
	retrier := NewRetrier(&Config{
		OnRetry: func(attempt int, err error) {
			seen = append(seen, attempt)
		},
	})

	counter := 0
	err := retrier.Do(ctx, func() error {
		counter++
		if counter < 3 {
			return errors.New("again")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	retrier := NewDefaultRetrier()

	err := retrier.Do(ctx, func() error {
		cancel()
		return errors.New("operation error after cancel")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetry_Delay(t *testing.T) {
	ctx := context.Background()
	retrier := NewRetrier(&Config{MaxAttempts: 3, Delay: 20 * time.Millisecond})

	start := time.Now()
	_ = retrier.Do(ctx, func() error { return errors.New("error") })

	// two waits between three attempts
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}
