package wordstore

import "errors"

// Package-specific errors
var (
	// ErrStoreUnavailable is returned when a lexical store backend cannot be
	// opened or reached (missing database file, connection refused, bad DSN).
	ErrStoreUnavailable = errors.New("lexical store is unavailable")

	// ErrNoMatchingWord is returned when no word satisfies the requested
	// category and length range, including impossible ranges where min > max.
	ErrNoMatchingWord = errors.New("no word matches the requested category and length range")

	// ErrUnknownCategory is returned when a category value is outside the
	// closed part-of-speech enumeration.
	ErrUnknownCategory = errors.New("unknown word category")

	// ErrMigrationFailed is returned when the word table schema cannot be applied.
	ErrMigrationFailed = errors.New("failed to apply word store migrations")

	// ErrUnknownDriver is returned by Open when the configured driver name is
	// not one of "memory", "sqlite" or "postgres".
	ErrUnknownDriver = errors.New("unknown word store driver")
)
