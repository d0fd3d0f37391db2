package wordstore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWordsCoverAllCategories(t *testing.T) {
	t.Parallel()

	for _, cat := range Categories() {
		list, ok := defaultWords[cat]
		require.True(t, ok, "missing default list for %s", cat)
		require.NotEmpty(t, list, "empty default list for %s", cat)
	}
}

func TestDefaultWordsAreLowercaseTokens(t *testing.T) {
	t.Parallel()

	for cat, list := range defaultWords {
		for _, w := range list {
			assert.NotEmpty(t, w, "category %s", cat)
			assert.Equal(t, strings.ToLower(w), w, "category %s word %q", cat, w)
			assert.NotContains(t, w, " ", "category %s word %q", cat, w)
		}
	}
}

// The preset recipes draw adjectives, verbs and nouns with the default [6,6]
// range, so those lists must keep a healthy number of six-letter entries.
func TestDefaultWordsSatisfyPresetRange(t *testing.T) {
	t.Parallel()

	for _, cat := range []Category{Adjective, Verb, Noun} {
		sixLetter := 0
		for _, w := range defaultWords[cat] {
			if len(w) == 6 {
				sixLetter++
			}
		}
		assert.GreaterOrEqual(t, sixLetter, 5, "category %s needs six-letter words", cat)
	}
}
