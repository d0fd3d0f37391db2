// Package wordstore provides the lexical store behind fluent code generation:
// per-category word lists keyed by grammatical part of speech, exposed through
// a single sampling capability: draw one random lowercase word of a category
// whose length lies in an inclusive range.
//
// # Architecture
//
//   • Category is a closed enumeration of the sixteen Universal Dependencies
//     part-of-speech tags. Each category maps to one word list; in the
//     persistent backends that list is a table named after the UD
//     abbreviation (adj, cconj, propn, and so on).
//   • Store is the backend interface. Three implementations ship with the
//     package: Memory (embedded dictionaries, zero I/O), SQLite (a
//     provisioned database file, the distribution format of the word corpus)
//     and Postgres (a shared database for fleet deployments).
//   • All backends sample uniformly over the qualifying subset. The SQL
//     backends rely on ORDER BY random() LIMIT 1, the memory backend filters
//     and indexes into the match set with a seeded math/rand source.
//   • Schema for the persistent backends is applied with goose from an
//     embedded migration, and Seed loads word lists transactionally.
//
// # Usage
//
// Open a backend from the environment:
//
//	cfg, err := wordstore.LoadConfig()
//	if err != nil {
//		// Handle error
//	}
//	store, err := wordstore.Open(ctx, cfg)
//	if err != nil {
//		// Handle error
//	}
//	defer store.Close()
//
//	word, err := store.RandomWord(ctx, wordstore.Noun, 3, 8)
//
// Or construct one directly:
//
//	store := wordstore.NewMemory(wordstore.WithWords(map[wordstore.Category][]string{
//		wordstore.Noun: {"gadget", "widget"},
//	}))
//
// # Errors
//
// ErrStoreUnavailable reports a backend that cannot be opened (missing file,
// unreachable database); ErrNoMatchingWord reports an empty qualifying set
// for a category/length combination, which includes impossible ranges where
// min > max; ErrUnknownCategory reports a value outside the enumeration.
// None of the operations retry: opening is deterministic and sampling has no
// transient failure mode of its own.
package wordstore
