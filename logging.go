package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/mattn/go-isatty"
)

// newLogger builds the process logger. Text on a terminal, JSON otherwise;
// LOG_FORMAT and LOG_LEVEL override both choices.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	if raw := env.Str("LOG_LEVEL", ""); raw != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(raw)); err == nil {
			level = parsed
		}
	}
	opts := &slog.HandlerOptions{Level: level}

	format := strings.ToLower(env.Str("LOG_FORMAT", ""))
	if format == "" {
		format = "json"
		if isTerminal(w) {
			format = "text"
		}
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
