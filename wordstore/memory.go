package wordstore

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Memory is an in-process Store backed by the embedded default dictionaries.
// It holds no external resources, so it can never become unavailable, and it
// is safe for concurrent use by multiple builders.
type Memory struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	words map[Category][]string
}

// MemoryOption configures the in-memory store.
type MemoryOption func(*Memory)

// WithWords merges custom word lists into the defaults. Custom words are
// lowercased on the way in so the store always serves lowercase tokens.
// Passing a list for a category extends it; defaults are never removed.
func WithWords(custom map[Category][]string) MemoryOption {
	return func(m *Memory) {
		for cat, list := range custom {
			for _, w := range list {
				m.words[cat] = append(m.words[cat], strings.ToLower(w))
			}
		}
	}
}

// NewMemory returns an in-memory store seeded with the embedded dictionaries.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
		words: make(map[Category][]string, len(defaultWords)),
	}
	for cat, list := range defaultWords {
		m.words[cat] = append(m.words[cat], list...)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RandomWord implements Store. The draw is uniform over the words of the
// category whose length lies in [minLen, maxLen]; length is counted in bytes,
// matching the persistent backends' length(word) predicate on ASCII data.
func (m *Memory) RandomWord(_ context.Context, cat Category, minLen, maxLen int) (string, error) {
	if !cat.Valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownCategory, int(cat))
	}

	var matched []string
	for _, w := range m.words[cat] {
		if len(w) >= minLen && len(w) <= maxLen {
			matched = append(matched, w)
		}
	}
	if len(matched) == 0 {
		return "", fmt.Errorf("%w: %s words of length %d..%d", ErrNoMatchingWord, cat, minLen, maxLen)
	}

	m.mu.Lock()
	w := matched[m.rnd.Intn(len(matched))]
	m.mu.Unlock()
	return w, nil
}

// Close implements Store. The memory store holds no resources.
func (m *Memory) Close() error { return nil }
