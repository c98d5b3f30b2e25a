// Package logging provides structured logging for the mcph CLI built on
// log/slog.
//
// The default text handler is TTY-aware: output is colorized when stderr is
// a terminal (respecting NO_COLOR and TERM=dumb), and attribute values that
// look like credentials are masked before they reach the terminal. A JSON
// handler is available for machine consumption, and NewTee copies records
// to several sinks at once, which backs the --log-file flag.
package logging
