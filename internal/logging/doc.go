// Package logging provides concrete implementations of the dwgate.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes diagnostics to stderr (or any io.Writer)
//   - NullLogger: Discards all messages (useful for testing)
//
// Diagnostics are kept apart from run outcomes, which go through a
// dwgate.Reporter on stdout so pipelines can capture them separately.
package logging
