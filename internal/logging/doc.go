// Package logging provides concrete implementations of the pathkit.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes levelled messages through a tint slog handler, coloured on a terminal
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
