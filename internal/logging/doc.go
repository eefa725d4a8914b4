// Package logging provides concrete implementations of the gircheck.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed messages to stderr with thread-safe output
//   - ZapLogger: Structured JSON output through go.uber.org/zap (--log-json)
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
