package fluentcode

import "github.com/dmitrymomot/fluentcode/wordstore"

// Re-exported store errors so callers of the builder API can match failures
// without importing wordstore directly.
var (
	// ErrStoreUnavailable reports that the lexical store could not be opened
	// by the sampling call that triggered the lazy connection.
	ErrStoreUnavailable = wordstore.ErrStoreUnavailable

	// ErrNoMatchingWord reports that a category/length-range combination has
	// no candidates, including ranges where min > max.
	ErrNoMatchingWord = wordstore.ErrNoMatchingWord
)
