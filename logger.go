package hashtab

import (
	"log/slog"
)

// discardLogger is used when no logger is configured.
var discardLogger = slog.New(slog.DiscardHandler)

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return discardLogger
	}
	return l.With("component", "hashtab")
}
