package wordstore

// Category is a grammatical part-of-speech tag identifying one word list in
// the lexical store. The set is closed and follows the Universal Dependencies
// POS inventory (https://universaldependencies.org/u/pos/).
type Category int

// Part-of-speech categories available for sampling.
const (
	Adjective Category = iota
	Adposition
	Adverb
	Auxiliary
	CoordinatingConjunction
	Determiner
	Interjection
	Noun
	Numeral
	Particle
	Pronoun
	ProperNoun
	Punctuation
	SubordinatingConjunction
	Symbol
	Verb
)

// categoryNames maps each category to its long human-readable name.
var categoryNames = map[Category]string{
	Adjective:                "adjective",
	Adposition:               "adposition",
	Adverb:                   "adverb",
	Auxiliary:                "auxiliary",
	CoordinatingConjunction:  "coordinating-conjunction",
	Determiner:               "determiner",
	Interjection:             "interjection",
	Noun:                     "noun",
	Numeral:                  "numeral",
	Particle:                 "particle",
	Pronoun:                  "pronoun",
	ProperNoun:               "proper-noun",
	Punctuation:              "punctuation",
	SubordinatingConjunction: "subordinating-conjunction",
	Symbol:                   "symbol",
	Verb:                     "verb",
}

// categoryTables maps each category to the short list/table name used by the
// persistent backends. These are the conventional UD tag abbreviations.
var categoryTables = map[Category]string{
	Adjective:                "adj",
	Adposition:               "adp",
	Adverb:                   "adv",
	Auxiliary:                "aux",
	CoordinatingConjunction:  "cconj",
	Determiner:               "det",
	Interjection:             "intj",
	Noun:                     "noun",
	Numeral:                  "num",
	Particle:                 "part",
	Pronoun:                  "pron",
	ProperNoun:               "propn",
	Punctuation:              "punct",
	SubordinatingConjunction: "sconj",
	Symbol:                   "sym",
	Verb:                     "verb",
}

// String returns the long name of the category, e.g. "coordinating-conjunction".
// Unknown values render as "unknown".
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Table returns the short list name the category maps to in persistent
// backends, e.g. "cconj". It returns an empty string for unknown values.
// Backends interpolate this into SQL, so it must only ever come from the
// closed enumeration, never from user input.
func (c Category) Table() string {
	return categoryTables[c]
}

// Valid reports whether the category is part of the closed enumeration.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Categories returns all categories in declaration order. Useful for seeding
// and for iterating over the full schema.
func Categories() []Category {
	return []Category{
		Adjective, Adposition, Adverb, Auxiliary, CoordinatingConjunction,
		Determiner, Interjection, Noun, Numeral, Particle, Pronoun,
		ProperNoun, Punctuation, SubordinatingConjunction, Symbol, Verb,
	}
}
