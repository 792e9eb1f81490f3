// Package obslog builds the structured logger the engine attaches to
// one instance via engine.WithLogger/WithLogLevel. Unlike a process-wide
// logging singleton, each engine owns its *slog.Logger outright — spec
// §9 singles out "process-wide mutable state" as something to avoid,
// and that applies just as well to logging as to the adjacency
// registry it was written about.
package obslog

import (
	"context"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Level mirrors spec §6's log_level option.
type Level string

const (
	LevelNone  Level = "none"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
)

// FileSink configures optional rotating file output via lumberjack.
type FileSink struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New builds a *slog.Logger for the given Level, writing to stderr and,
// if sink is non-nil, to a rotating file as well.
func New(level Level, sink *FileSink) *slog.Logger {
	if level == LevelNone {
		return slog.New(slog.NewTextHandler(discard{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}

	slogLevel := slog.LevelInfo
	if level == LevelDebug {
		slogLevel = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: slogLevel}

	handlers := []slog.Handler{slog.NewTextHandler(os.Stderr, opts)}
	if sink != nil {
		handlers = append(handlers, slog.NewJSONHandler(&lumberjack.Logger{
			Filename:   sink.Path,
			MaxSize:    sink.MaxSizeMB,
			MaxBackups: sink.MaxBackups,
			MaxAge:     sink.MaxAgeDays,
		}, opts))
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0])
	}
	return slog.New(newMultiHandler(handlers...))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// multiHandler fans one record out to every underlying handler.
type multiHandler struct {
	handlers []slog.Handler
}

func newMultiHandler(handlers ...slog.Handler) *multiHandler {
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return newMultiHandler(handlers...)
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return newMultiHandler(handlers...)
}
