package fluentcode

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/dmitrymomot/fluentcode/wordstore"
)

// Defaults for a freshly constructed builder.
const (
	// DefaultJoiner separates tokens in the rendered code.
	DefaultJoiner = "-"
	// DefaultWordLength is both the default minimum and maximum word length.
	DefaultWordLength = 6
)

// OpenStoreFunc lazily opens a lexical store for a builder. It is called at
// most once per builder, by the first sampling call.
type OpenStoreFunc func() (wordstore.Store, error)

// Builder accumulates tokens for one fluent code. Each sampling method draws
// a word from the lexical store and appends it; String renders the tokens
// joined by the configured separator.
//
// A builder is a transient, single-goroutine object. It owns at most one
// store handle, opened lazily by the first sampling call and never shared
// with another builder. Errors are sticky: the first failing call records its
// error, subsequent sampling calls become no-ops, and Err returns the cause.
// Tokens appended before the failure stay valid and still render.
type Builder struct {
	tokens []string
	joiner string
	minLen int
	maxLen int

	store wordstore.Store
	open  OpenStoreFunc
	owned bool
	err   error
}

// Option configures a Builder at construction time.
type Option func(*Builder)

// WithStore injects an already-open store handle. The caller keeps ownership:
// the builder never closes an injected store.
func WithStore(s wordstore.Store) Option {
	return func(b *Builder) {
		b.store = s
		b.open = nil
	}
}

// WithStoreOpener injects a lazy opener. The store it returns is owned by the
// builder and released by Close.
func WithStoreOpener(open OpenStoreFunc) Option {
	return func(b *Builder) {
		b.store = nil
		b.open = open
	}
}

// New returns a builder with no tokens, joiner "-" and length range [6,6].
// Without options it samples from the embedded in-memory dictionaries.
func New(opts ...Option) *Builder {
	b := &Builder{
		joiner: DefaultJoiner,
		minLen: DefaultWordLength,
		maxLen: DefaultWordLength,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.store == nil && b.open == nil {
		b.open = func() (wordstore.Store, error) { return wordstore.NewMemory(), nil }
	}
	return b
}

// WithJoiner sets the separator used when rendering. It may be changed at any
// point before String; the last value wins for every join position.
func (b *Builder) WithJoiner(joiner string) *Builder {
	b.joiner = joiner
	return b
}

// WithMinLength sets the minimum word length for subsequent sampling calls.
// Tokens already appended are unaffected.
func (b *Builder) WithMinLength(length int) *Builder {
	b.minLen = length
	return b
}

// WithMaxLength sets the maximum word length for subsequent sampling calls.
// Tokens already appended are unaffected.
func (b *Builder) WithMaxLength(length int) *Builder {
	b.maxLen = length
	return b
}

// ensureStore opens the lexical store on first use. Idempotent.
func (b *Builder) ensureStore() error {
	if b.store != nil {
		return nil
	}
	s, err := b.open()
	if err != nil {
		if !errors.Is(err, wordstore.ErrStoreUnavailable) {
			err = errors.Join(wordstore.ErrStoreUnavailable, err)
		}
		return err
	}
	b.store = s
	b.owned = true
	return nil
}

// sample draws one word of cat within the current length range and appends
// it. A failed draw appends nothing.
func (b *Builder) sample(cat wordstore.Category) *Builder {
	if b.err != nil {
		return b
	}
	// An impossible range can never match, so it is rejected before the
	// store is even opened.
	if b.minLen > b.maxLen {
		b.err = fmt.Errorf("%w: min length %d exceeds max length %d",
			wordstore.ErrNoMatchingWord, b.minLen, b.maxLen)
		return b
	}
	if err := b.ensureStore(); err != nil {
		b.err = err
		return b
	}
	word, err := b.store.RandomWord(context.Background(), cat, b.minLen, b.maxLen)
	if err != nil {
		b.err = err
		return b
	}
	b.tokens = append(b.tokens, word)
	return b
}

// Word appends one random word of any category, including Numeral, which has
// no dedicated method. The per-category methods below are thin wrappers.
func (b *Builder) Word(cat wordstore.Category) *Builder { return b.sample(cat) }

// Adjective appends a random adjective.
func (b *Builder) Adjective() *Builder { return b.sample(wordstore.Adjective) }

// Adposition appends a random adposition.
func (b *Builder) Adposition() *Builder { return b.sample(wordstore.Adposition) }

// Adverb appends a random adverb.
func (b *Builder) Adverb() *Builder { return b.sample(wordstore.Adverb) }

// Auxiliary appends a random auxiliary verb.
func (b *Builder) Auxiliary() *Builder { return b.sample(wordstore.Auxiliary) }

// CoordinatingConjunction appends a random coordinating conjunction.
func (b *Builder) CoordinatingConjunction() *Builder {
	return b.sample(wordstore.CoordinatingConjunction)
}

// Determiner appends a random determiner.
func (b *Builder) Determiner() *Builder { return b.sample(wordstore.Determiner) }

// Interjection appends a random interjection.
func (b *Builder) Interjection() *Builder { return b.sample(wordstore.Interjection) }

// Noun appends a random noun.
func (b *Builder) Noun() *Builder { return b.sample(wordstore.Noun) }

// Particle appends a random particle.
func (b *Builder) Particle() *Builder { return b.sample(wordstore.Particle) }

// Pronoun appends a random pronoun.
func (b *Builder) Pronoun() *Builder { return b.sample(wordstore.Pronoun) }

// ProperNoun appends a random proper noun.
func (b *Builder) ProperNoun() *Builder { return b.sample(wordstore.ProperNoun) }

// Punctuation appends a random punctuation token.
func (b *Builder) Punctuation() *Builder { return b.sample(wordstore.Punctuation) }

// SubordinatingConjunction appends a random subordinating conjunction.
func (b *Builder) SubordinatingConjunction() *Builder {
	return b.sample(wordstore.SubordinatingConjunction)
}

// Symbol appends a random symbol token.
func (b *Builder) Symbol() *Builder { return b.sample(wordstore.Symbol) }

// Verb appends a random verb.
func (b *Builder) Verb() *Builder { return b.sample(wordstore.Verb) }

// SixDigits appends a uniformly random number in [0, 999999] formatted as a
// fixed six-character token with leading zeros, e.g. "004271". The range is
// inclusive of the upper bound. No I/O is involved and the call cannot fail.
func (b *Builder) SixDigits() *Builder {
	if b.err != nil {
		return b
	}
	b.tokens = append(b.tokens, fmt.Sprintf("%06d", rand.Intn(1000000)))
	return b
}

// String renders the accumulated tokens joined by the current joiner. It has
// no side effects: the token sequence persists and the builder stays usable,
// so String may be called repeatedly and mid-chain. Zero tokens render as the
// empty string; a single token renders as itself.
func (b *Builder) String() string {
	return strings.Join(b.tokens, b.joiner)
}

// Err returns the first error recorded by a sampling call, or nil.
func (b *Builder) Err() error { return b.err }

// Tokens returns a copy of the accumulated token sequence.
func (b *Builder) Tokens() []string {
	out := make([]string, len(b.tokens))
	copy(out, b.tokens)
	return out
}

// Len returns the number of accumulated tokens.
func (b *Builder) Len() int { return len(b.tokens) }

// Close releases the store handle if the builder opened one itself. Injected
// stores are left open for their owner. Close is safe to call on a builder
// that never sampled anything.
func (b *Builder) Close() error {
	if !b.owned || b.store == nil {
		return nil
	}
	s := b.store
	b.store = nil
	b.owned = false
	return s.Close()
}
