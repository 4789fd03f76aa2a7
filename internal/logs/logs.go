// Package logs sets up the structured logger shared by the scoreboard packages.
package logs

import (
	"io"
	"log/slog"

	"github.com/gogpu/gg"
)

// New returns a text logger writing to w. Verbose enables debug records.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Init installs l as the default logger and as the renderer's logger.
func Init(l *slog.Logger) {
	slog.SetDefault(l)
	gg.SetLogger(l.With(slog.String("component", "gg")))
}

// WithComponent tags l with a component name. A nil l yields a discarding logger.
func WithComponent(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		return Discard()
	}
	return l.With(slog.String("component", name))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
