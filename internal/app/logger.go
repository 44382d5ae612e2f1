package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// NewLogger returns a text slog.Logger writing Info and above to w. Every
// record carries a fresh run id.
func NewLogger(w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With("run", uuid.NewString())
}
