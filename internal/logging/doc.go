// Package logging assembles structured slog loggers and formatting helpers used
// across marquee.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers so packages tag log lines with the
// same keys. Interactive sessions write logs to a file under the configured
// log directory so menu output on the terminal stays readable. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
package logging
