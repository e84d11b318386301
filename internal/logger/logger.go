package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const instrumentationName = "ctchen222/Tic-Tac-Toe-Solo"

// Options selects the console side of the logger.
type Options struct {
	Level  slog.Level
	Format string // "text" or "json"
	Output io.Writer
}

// MultiHandler is a slog.Handler that dispatches records to multiple handlers.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler creates a new MultiHandler.
func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Enabled reports whether the handler handles records at the given level.
// The handler is enabled if any of its underlying handlers is enabled.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle dispatches the record to every underlying handler enabled for its
// level. A failing handler does not keep the others from receiving it.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithAttrs returns a new MultiHandler whose handlers have the given attributes.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return NewMultiHandler(newHandlers...)
}

// WithGroup returns a new MultiHandler whose handlers have the given group.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return NewMultiHandler(newHandlers...)
}

// New builds a logger writing to the console and to the OpenTelemetry log
// bridge. The bridge is a no-op until telemetry installs a logger provider.
func New(opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		AddSource: true, // Include source file and line number
		Level:     opts.Level,
	}

	var consoleHandler slog.Handler
	if opts.Format == "json" {
		consoleHandler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		consoleHandler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	otelHandler := otelslog.NewHandler(instrumentationName)

	return slog.New(NewMultiHandler(consoleHandler, otelHandler))
}

// Init installs the logger built by New as the slog default.
func Init(opts Options) *slog.Logger {
	l := New(opts)
	slog.SetDefault(l)
	return l
}
