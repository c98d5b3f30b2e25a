// Package errors provides error handling conventions for the mcph CLI.
//
// It re-exports the cockroachdb/errors constructors used throughout the
// codebase, defines sentinel errors for the failure conditions the snapshot
// engine can report, and provides an ExitError type for CLI exit code
// handling.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrNoPreviousConfig) {
//	    // the very first snapshot cannot be rolled back
//	}
//
// ErrAppliedNotRecorded deserves special attention: it means the client's
// config file was updated but the history append failed afterwards, so the
// recorded history no longer matches the live configuration.
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion:
//
//	err := errors.NewUserError(errors.ErrInvalidConfig, "Check your config file")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
