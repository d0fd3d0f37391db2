package fluentcode_test

import (
	"testing"

	"github.com/dmitrymomot/fluentcode"
	"github.com/dmitrymomot/fluentcode/wordstore"
)

func BenchmarkPresets(b *testing.B) {
	b.Run("FourWords", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_ = fluentcode.FourWords()
		}
	})

	b.Run("ThreeWordsAndSixDigits", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_ = fluentcode.ThreeWordsAndSixDigits()
		}
	})
}

func BenchmarkBuilderChain(b *testing.B) {
	// One shared store across iterations, as a long-lived caller would use it.
	store := wordstore.NewMemory()

	b.Run("SixWordsAndDigits", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			bl := fluentcode.New(fluentcode.WithStore(store))
			_ = bl.WithMinLength(3).WithMaxLength(8).
				Adjective().Adverb().Verb().Noun().ProperNoun().Verb().
				SixDigits().
				String()
		}
	})

	b.Run("SixDigitsOnly", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_ = fluentcode.New().SixDigits().String()
		}
	})
}
