package wordstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluentcode/wordstore"
)

func TestCategories(t *testing.T) {
	t.Parallel()

	all := wordstore.Categories()
	require.Len(t, all, 16)

	names := make(map[string]struct{}, len(all))
	tables := make(map[string]struct{}, len(all))
	for _, cat := range all {
		assert.True(t, cat.Valid())
		assert.NotEqual(t, "unknown", cat.String())
		assert.NotEmpty(t, cat.Table())
		names[cat.String()] = struct{}{}
		tables[cat.Table()] = struct{}{}
	}
	assert.Len(t, names, 16, "category names must be unique")
	assert.Len(t, tables, 16, "category tables must be unique")
}

func TestCategoryMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cat   wordstore.Category
		name  string
		table string
	}{
		{wordstore.Adjective, "adjective", "adj"},
		{wordstore.Adposition, "adposition", "adp"},
		{wordstore.Adverb, "adverb", "adv"},
		{wordstore.Auxiliary, "auxiliary", "aux"},
		{wordstore.CoordinatingConjunction, "coordinating-conjunction", "cconj"},
		{wordstore.Determiner, "determiner", "det"},
		{wordstore.Interjection, "interjection", "intj"},
		{wordstore.Noun, "noun", "noun"},
		{wordstore.Numeral, "numeral", "num"},
		{wordstore.Particle, "particle", "part"},
		{wordstore.Pronoun, "pronoun", "pron"},
		{wordstore.ProperNoun, "proper-noun", "propn"},
		{wordstore.Punctuation, "punctuation", "punct"},
		{wordstore.SubordinatingConjunction, "subordinating-conjunction", "sconj"},
		{wordstore.Symbol, "symbol", "sym"},
		{wordstore.Verb, "verb", "verb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.name, tt.cat.String())
			assert.Equal(t, tt.table, tt.cat.Table())
		})
	}
}

func TestCategoryInvalid(t *testing.T) {
	t.Parallel()

	for _, cat := range []wordstore.Category{-1, 16, 99} {
		assert.False(t, cat.Valid())
		assert.Equal(t, "unknown", cat.String())
		assert.Empty(t, cat.Table())
	}
}
