package wordstore

import (
	"context"
	"log/slog"
)

// Store is the capability the code builder needs from a lexical store:
// draw one random lowercase word of a category within an inclusive length
// range. Implementations must sample uniformly over the qualifying subset
// and must be safe for concurrent use by multiple builders.
type Store interface {
	// RandomWord returns one word of the given category whose length lies in
	// [minLen, maxLen] inclusive, lowercase, chosen uniformly at random among
	// all qualifying words. It returns ErrNoMatchingWord when no word
	// qualifies (including minLen > maxLen) and ErrUnknownCategory for
	// values outside the enumeration.
	RandomWord(ctx context.Context, cat Category, minLen, maxLen int) (string, error)

	// Close releases any resources held by the store. Closing a store that
	// holds no resources is a no-op.
	Close() error
}

// logger is the minimal structured-logging interface the persistent backends
// need. Compatible with *slog.Logger.
type logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// orDiscard returns log or, when log is nil, a logger that drops everything.
func orDiscard(log logger) logger {
	if log != nil {
		return log
	}
	return slog.New(slog.DiscardHandler)
}
