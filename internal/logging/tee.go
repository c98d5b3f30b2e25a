package logging

import (
	"context"
	"errors"
	"log/slog"
)

// teeHandler copies every record to a set of sinks. It backs --log-file,
// where the console handler and a JSON file handler both receive the
// stream. Each sink keeps its own level; a record is delivered to every
// sink whose level admits it.
type teeHandler struct {
	sinks []slog.Handler
}

// NewTee returns a handler that forwards records to all given sinks.
func NewTee(sinks ...slog.Handler) slog.Handler {
	return &teeHandler{sinks: sinks}
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, s := range h.sinks {
		if s.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle delivers the record to every admitting sink. A failing sink does
// not stop delivery to the others; the errors are joined.
func (h *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, s := range h.sinks {
		if !s.Enabled(ctx, r.Level) {
			continue
		}
		if err := s.Handle(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.fanout(func(s slog.Handler) slog.Handler { return s.WithAttrs(attrs) })
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	return h.fanout(func(s slog.Handler) slog.Handler { return s.WithGroup(name) })
}

func (h *teeHandler) fanout(wrap func(slog.Handler) slog.Handler) slog.Handler {
	sinks := make([]slog.Handler, len(h.sinks))
	for i, s := range h.sinks {
		sinks[i] = wrap(s)
	}
	return &teeHandler{sinks: sinks}
}
