package retry

import (
	"context"
	"time"

	"github.com/renesugar/gircheck/pkg/gircheck"
)

// Executor runs an operation until it succeeds, fails fatally, or exhausts
// its attempts. Safe for concurrent use; WithOnRetry returns a copy.
type Executor struct {
	classifier gircheck.ErrorClassifier
	strategy   gircheck.BackoffStrategy
	onRetry    func(attempt int, err error, delay time.Duration)
}

// NewExecutor creates a new retry executor with the given configuration.
// Panics if classifier or strategy is nil.
func NewExecutor(classifier gircheck.ErrorClassifier, strategy gircheck.BackoffStrategy) *Executor {
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	return &Executor{classifier: classifier, strategy: strategy}
}

// NewWriteExecutor returns the executor used for artifact writes:
// three retries starting at 20ms.
func NewWriteExecutor() *Executor {
	return NewExecutor(
		NewFileSystemErrorClassifier(),
		NewExponentialBackoff(3, WithInitialDelay(20*time.Millisecond), WithMaxDelay(500*time.Millisecond)),
	)
}

// WithOnRetry returns a copy of the executor that calls callback before each retry.
func (e *Executor) WithOnRetry(callback func(attempt int, err error, delay time.Duration)) *Executor {
	clone := *e
	clone.onRetry = callback
	return &clone
}

// Execute runs operation, retrying transient failures.
// Returns nil, the first fatal error, the last transient error, or ctx.Err().
func (e *Executor) Execute(ctx context.Context, operation func(ctx context.Context) error) error {
	lastErr := operation(ctx)
	if lastErr == nil || !e.classifier.IsTransient(lastErr) {
		return lastErr
	}

	for attempt := 0; attempt < e.strategy.MaxAttempts(); attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		delay := e.strategy.NextDelay(attempt)
		if e.onRetry != nil {
			e.onRetry(attempt, lastErr, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		lastErr = operation(ctx)
		if lastErr == nil || !e.classifier.IsTransient(lastErr) {
			return lastErr
		}
	}

	return lastErr
}
