package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/renesugar/gircheck/internal/cli"
	"github.com/renesugar/gircheck/pkg/gircheck"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(gircheck.ExitPanic)
		}
	}()

	if os.Getenv("GIRCHECK_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(gircheck.ExitCodeForError(err))
	}
}
