package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errTransient = errors.New("transient")
	errFatal     = errors.New("fatal")
)

func fast(attempts int) Policy {
	return Policy{MaxAttempts: attempts, Delay: time.Millisecond}
}

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, 3, p.MaxAttempts)
	assert.Equal(t, 2*time.Second, p.Delay)
}

func TestDo(t *testing.T) {
	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), fast(3), func(context.Context) error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("recovers on second attempt", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), fast(3), func(context.Context) error {
			calls++
			if calls < 2 {
				return errTransient
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), fast(3), func(context.Context) error {
			calls++
			return errTransient
		})
		require.ErrorIs(t, err, errTransient)
		assert.Equal(t, 3, calls)
	})

	t.Run("non-retryable stops immediately", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), fast(3), func(context.Context) error {
			calls++
			return errFatal
		}, WithRetryable(func(err error) bool { return !errors.Is(err, errFatal) }))
		require.ErrorIs(t, err, errFatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero attempts runs once", func(t *testing.T) {
		calls := 0
		_ = Do(context.Background(), fast(0), func(context.Context) error {
			calls++
			return errTransient
		})
		assert.Equal(t, 1, calls)
	})

	t.Run("notify sees each retried attempt", func(t *testing.T) {
		var seen []int
		_ = Do(context.Background(), fast(3), func(context.Context) error {
			return errTransient
		}, WithNotify(func(attempt int, err error, next time.Duration) {
			seen = append(seen, attempt)
			assert.Equal(t, time.Millisecond, next)
		}))
		assert.Equal(t, []int{1, 2}, seen)
	})

	t.Run("cancelled context stops waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := Do(ctx, Policy{MaxAttempts: 3, Delay: time.Hour}, func(context.Context) error {
			calls++
			cancel()
			return errTransient
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestRun_ReturnsValue(t *testing.T) {
	v, err := Run(context.Background(), fast(2), func(context.Context) (string, error) {
		return "cust-1", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "cust-1", v)
}
