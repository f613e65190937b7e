package concurrency

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ThrottledWorker runs one job per tick, in order.
type ThrottledWorker struct {
	jobCallback func(ctx context.Context, arg string) error
	interval    time.Duration
}

func NewThrottledWorker(interval time.Duration, jobCallback func(ctx context.Context, arg string) error) ThrottledWorker {
	return ThrottledWorker{jobCallback: jobCallback, interval: interval}
}

// Run calls the job for every argument and returns the joined job errors.
// It stops early when ctx is done.
func (w *ThrottledWorker) Run(ctx context.Context, jobArgs []string) error {

	jobArgsChannel := make(chan string, len(jobArgs))

	for _, arg := range jobArgs {
		jobArgsChannel <- arg
	}
	close(jobArgsChannel)
	limiter := time.NewTicker(w.interval)
	defer limiter.Stop()

	var errs []error
	for arg := range jobArgsChannel {
		select {
		case <-ctx.Done():
			return errors.Join(append(errs, ctx.Err())...)
		case <-limiter.C:
		}
		if err := w.jobCallback(ctx, arg); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", arg, err))
		}
	}

	return errors.Join(errs...)
}
