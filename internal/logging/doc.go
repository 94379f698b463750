// Package logging assembles structured slog loggers and formatting helpers
// used across medsum.
//
// It owns the console and JSON handlers, level parsing, and output fan-out to
// stderr plus the log file under the configured log directory. Context
// helpers tag lines with the submission correlation id and file name so a
// single upload can be followed from the controller through the summarizer
// client. NewNop gives tests and wiring code a logger that cannot fail.
package logging
