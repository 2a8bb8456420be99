package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niksmo/storefront/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("transient failure")

func immediateBackoff(int) time.Duration {
	return time.Microsecond
}

func TestDoWithResult(t *testing.T) {
	t.Run("FirstAttemptSucceeds", func(t *testing.T) {
		var calls int
		got, err := retry.DoWithResult(t.Context(), retry.Config{
			MaxAttempts: 3,
			Backoff:     immediateBackoff,
		}, func() (string, error) {
			calls++
			return "ok", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 1, calls)
	})

	t.Run("RecoversWithinAttemptBudget", func(t *testing.T) {
		var calls int
		got, err := retry.DoWithResult(t.Context(), retry.Config{
			MaxAttempts: 3,
			Backoff:     immediateBackoff,
		}, func() (string, error) {
			calls++
			if calls < 3 {
				return "", errTransient
			}
			return "ok", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 3, calls)
	})

	t.Run("ExhaustsAttempts", func(t *testing.T) {
		var calls int
		_, err := retry.DoWithResult(t.Context(), retry.Config{
			MaxAttempts: 3,
			Backoff:     immediateBackoff,
		}, func() (string, error) {
			calls++
			return "", errTransient
		})

		require.ErrorIs(t, err, errTransient)
		assert.Equal(t, 3, calls)
	})

	t.Run("NonRetryableErrorStopsImmediately", func(t *testing.T) {
		errFatal := errors.New("fatal")
		var calls int
		_, err := retry.DoWithResult(t.Context(), retry.Config{
			MaxAttempts: 3,
			Backoff:     immediateBackoff,
			ShouldRetry: func(err error) bool {
				return !errors.Is(err, errFatal)
			},
		}, func() (string, error) {
			calls++
			return "", errFatal
		})

		require.ErrorIs(t, err, errFatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("CanceledContextStopsWaiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())

		var calls int
		_, err := retry.DoWithResult(ctx, retry.Config{
			MaxAttempts: 5,
			Backoff: func(int) time.Duration {
				return time.Minute
			},
		}, func() (string, error) {
			calls++
			cancel()
			return "", errTransient
		})

		require.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, err, errTransient)
		assert.Equal(t, 1, calls)
	})

	t.Run("AlreadyCanceledContextNeverCalls", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		var calls int
		_, err := retry.DoWithResult(ctx, retry.Config{MaxAttempts: 3},
			func() (string, error) {
				calls++
				return "", nil
			})

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, calls)
	})

	t.Run("ZeroConfigRunsOnce", func(t *testing.T) {
		var calls int
		_, err := retry.DoWithResult(t.Context(), retry.Config{},
			func() (string, error) {
				calls++
				return "", errTransient
			})

		require.ErrorIs(t, err, errTransient)
		assert.Equal(t, 1, calls)
	})
}

func TestDo(t *testing.T) {
	var calls int
	err := retry.Do(t.Context(), retry.Config{
		MaxAttempts: 2,
		Backoff:     immediateBackoff,
	}, func() error {
		calls++
		if calls == 1 {
			return errTransient
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestExponentialBackoff(t *testing.T) {
	backoff := retry.ExponentialBackoff(100 * time.Millisecond)

	first := backoff(1)
	second := backoff(2)

	assert.GreaterOrEqual(t, first, 200*time.Millisecond)
	assert.Less(t, first, 300*time.Millisecond+time.Millisecond)
	assert.GreaterOrEqual(t, second, 400*time.Millisecond)
	assert.Less(t, second, 600*time.Millisecond+time.Millisecond)
}
