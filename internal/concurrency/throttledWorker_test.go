package concurrency_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wheelibin/huelib/internal/concurrency"
)

func Test_ThrottledWorker(t *testing.T) {

	t.Run("should run every job in order", func(t *testing.T) {
		// arrange
		var ran []string
		w := concurrency.NewThrottledWorker(time.Millisecond, func(_ context.Context, arg string) error {
			ran = append(ran, arg)
			return nil
		})

		// act
		err := w.Run(context.Background(), []string{"1", "2", "3"})

		// assert
		assert.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, ran)
	})

	t.Run("should pace the jobs", func(t *testing.T) {
		// arrange
		w := concurrency.NewThrottledWorker(20*time.Millisecond, func(_ context.Context, _ string) error { return nil })
		start := time.Now()

		// act
		_ = w.Run(context.Background(), []string{"1", "2", "3"})

		// assert
		assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
	})

	t.Run("should keep going after a failure and return all errors", func(t *testing.T) {
		// arrange
		errUnreachable := errors.New("unreachable")
		var ran []string
		w := concurrency.NewThrottledWorker(time.Millisecond, func(_ context.Context, arg string) error {
			ran = append(ran, arg)
			if arg != "2" {
				return errUnreachable
			}
			return nil
		})

		// act
		err := w.Run(context.Background(), []string{"1", "2", "3"})

		// assert
		assert.ErrorIs(t, err, errUnreachable)
		assert.Contains(t, err.Error(), "1: unreachable")
		assert.Contains(t, err.Error(), "3: unreachable")
		assert.Equal(t, []string{"1", "2", "3"}, ran)
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		// arrange
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		called := false
		w := concurrency.NewThrottledWorker(time.Hour, func(_ context.Context, _ string) error {
			called = true
			return nil
		})

		// act
		err := w.Run(ctx, []string{"1"})

		// assert
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}
