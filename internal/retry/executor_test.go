package retry

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"
)

var (
	errBusy  = &os.PathError{Op: "open", Path: "/out/a.gir", Err: syscall.EBUSY}
	errFatal = &os.PathError{Op: "open", Path: "/out/a.gir", Err: syscall.EACCES}
)

// mockOperation returns errs in order, then nil.
type mockOperation struct {
	invocations int
	errs        []error
}

func (m *mockOperation) execute(ctx context.Context) error {
	m.invocations++
	if m.invocations <= len(m.errs) {
		return m.errs[m.invocations-1]
	}
	return nil
}

func fastExecutor(attempts int) *Executor {
	return NewExecutor(NewFileSystemErrorClassifier(), NewExponentialBackoff(attempts,
		WithInitialDelay(time.Millisecond),
		WithJitter(0),
	))
}

func TestNewExecutor_NilDeps(t *testing.T) {
	for name, fn := range map[string]func(){
		"nil classifier": func() { NewExecutor(nil, NewExponentialBackoff(1)) },
		"nil strategy":   func() { NewExecutor(NewFileSystemErrorClassifier(), nil) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			fn()
		})
	}
}

func TestExecutor_SuccessOnFirstAttempt(t *testing.T) {
	op := &mockOperation{}
	if err := fastExecutor(3).Execute(context.Background(), op.execute); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if op.invocations != 1 {
		t.Errorf("expected 1 invocation, got %d", op.invocations)
	}
}

func TestExecutor_SuccessAfterTransientFailures(t *testing.T) {
	op := &mockOperation{errs: []error{errBusy, errBusy}}

	var retries []int
	exec := fastExecutor(3).WithOnRetry(func(attempt int, err error, delay time.Duration) {
		retries = append(retries, attempt)
	})

	if err := exec.Execute(context.Background(), op.execute); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if op.invocations != 3 {
		t.Errorf("expected 3 invocations, got %d", op.invocations)
	}
	if len(retries) != 2 || retries[0] != 0 || retries[1] != 1 {
		t.Errorf("unexpected retry callbacks %v", retries)
	}
}

func TestExecutor_FatalErrorNotRetried(t *testing.T) {
	op := &mockOperation{errs: []error{errFatal}}
	err := fastExecutor(3).Execute(context.Background(), op.execute)
	if !errors.Is(err, syscall.EACCES) {
		t.Fatalf("expected EACCES, got %v", err)
	}
	if op.invocations != 1 {
		t.Errorf("expected 1 invocation, got %d", op.invocations)
	}
}

func TestExecutor_FatalAfterTransient(t *testing.T) {
	op := &mockOperation{errs: []error{errBusy, errFatal, errBusy}}
	err := fastExecutor(5).Execute(context.Background(), op.execute)
	if !errors.Is(err, syscall.EACCES) {
		t.Fatalf("expected EACCES, got %v", err)
	}
	if op.invocations != 2 {
		t.Errorf("expected 2 invocations, got %d", op.invocations)
	}
}

func TestExecutor_ExhaustsAttempts(t *testing.T) {
	op := &mockOperation{errs: []error{errBusy, errBusy, errBusy, errBusy, errBusy}}
	err := fastExecutor(2).Execute(context.Background(), op.execute)
	if !errors.Is(err, syscall.EBUSY) {
		t.Fatalf("expected last transient error, got %v", err)
	}
	if op.invocations != 3 {
		t.Errorf("expected 1 attempt + 2 retries, got %d", op.invocations)
	}
}

func TestExecutor_ZeroAttempts(t *testing.T) {
	op := &mockOperation{errs: []error{errBusy}}
	err := fastExecutor(0).Execute(context.Background(), op.execute)
	if !errors.Is(err, syscall.EBUSY) {
		t.Fatalf("expected EBUSY, got %v", err)
	}
	if op.invocations != 1 {
		t.Errorf("expected 1 invocation, got %d", op.invocations)
	}
}

func TestExecutor_ContextCancelledDuringBackoff(t *testing.T) {
	exec := NewExecutor(NewFileSystemErrorClassifier(), NewExponentialBackoff(3,
		WithInitialDelay(time.Hour), WithMaxDelay(time.Hour), WithJitter(0)))

	ctx, cancel := context.WithCancel(context.Background())
	op := &mockOperation{errs: []error{errBusy, errBusy}}

	exec = exec.WithOnRetry(func(int, error, time.Duration) { cancel() })
	err := exec.Execute(ctx, op.execute)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if op.invocations != 1 {
		t.Errorf("expected 1 invocation, got %d", op.invocations)
	}
}

func TestExecutor_WithOnRetryDoesNotMutate(t *testing.T) {
	base := fastExecutor(1)
	called := false
	_ = base.WithOnRetry(func(int, error, time.Duration) { called = true })

	op := &mockOperation{errs: []error{errBusy}}
	_ = base.Execute(context.Background(), op.execute)
	if called {
		t.Error("callback registered on a copy must not fire on the original")
	}
}
