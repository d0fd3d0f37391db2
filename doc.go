// Package fluentcode generates human-memorable identifiers ("fluent codes")
// by sampling words tagged with grammatical parts of speech from a lexical
// store, joining them with a configurable separator and optionally appending
// a zero-padded numeric suffix. Typical uses are container names, session
// slugs and other identifiers that are easier to read, say and type than
// opaque random strings.
//
// Key properties:
//
//   - Chainable builder API: one method per part-of-speech category plus a
//     six-digit numeric suffix
//   - Pluggable lexical store (embedded dictionaries, SQLite file, Postgres)
//   - Uniform sampling over every word that satisfies the length constraint
//   - Sticky error model: a failed draw stops the chain, earlier tokens
//     survive and still render
//
// Basic Usage:
//
//	// Preset recipes on the embedded dictionaries
//	name := fluentcode.FourWords()               // "fluffy-gather-misuse-deadly"
//	code := fluentcode.ThreeWordsAndSixDigits()  // "placid-gather-walnut-887709"
//
//	// Or drive the builder directly
//	b := fluentcode.New()
//	defer b.Close()
//	s := b.WithMinLength(3).WithMaxLength(8).
//		WithJoiner("_").
//		Adjective().Verb().Noun().SixDigits().
//		String()
//	if err := b.Err(); err != nil {
//		// Handle error
//	}
//
// To sample from a provisioned word database instead of the embedded lists,
// inject a store:
//
//	store, err := wordstore.OpenSQLite(ctx, "./db/words.db")
//	if err != nil {
//		// Handle error
//	}
//	defer store.Close()
//
//	b := fluentcode.New(fluentcode.WithStore(store))
//
// The package is not a cryptographically secure token generator, and it does
// not guarantee uniqueness of generated codes; callers that need collision
// resistance should append their own entropy or check against their own
// records.
package fluentcode
