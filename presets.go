package fluentcode

// Preset recipes. Both run on a default builder: embedded dictionaries,
// joiner "-", word length 6. The embedded lists carry six-letter entries for
// every category the presets touch, so the draws cannot come up empty.

// FourWords returns a code of four words in adjective-verb-noun-adjective
// order, e.g. "fluffy-gather-misuse-deadly".
func FourWords() string {
	b := New()
	defer b.Close()
	return b.Adjective().Verb().Noun().Adjective().String()
}

// ThreeWordsAndSixDigits returns a code of three words followed by a six
// digit number, e.g. "placid-gather-walnut-887709".
func ThreeWordsAndSixDigits() string {
	b := New()
	defer b.Close()
	return b.Adjective().Verb().Noun().SixDigits().String()
}
