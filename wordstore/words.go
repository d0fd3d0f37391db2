package wordstore

// Default word lists for the in-memory backend. Words are lowercase and
// grouped by part-of-speech category. Open classes (adjective, noun, verb,
// adverb, proper noun) carry enough six-letter entries to satisfy the default
// [6,6] length range used by the preset recipes; closed classes are naturally
// short and thin.
var defaultWords = map[Category][]string{
	Adjective: {
		"big", "raw", "shy", "odd", "sly", "icy", "wry",
		"bold", "calm", "cozy", "deep", "fast", "glad", "keen", "lush",
		"mild", "neat", "pale", "ripe", "soft", "tidy", "warm", "wild",
		"amber", "brave", "crisp", "dusty", "eager", "fancy", "giddy",
		"happy", "jolly", "lucky", "misty", "noble", "plump", "quick",
		"rusty", "sunny", "vivid", "witty", "zesty",
		"bright", "clever", "deadly", "fierce", "fluffy", "gentle",
		"golden", "humble", "lively", "mellow", "nimble", "placid",
		"polite", "quirky", "rugged", "silent", "sleepy", "steady",
		"sturdy", "subtle", "supple", "tender",
		"ancient", "curious", "gallant", "radiant", "serene", "valiant",
		"cheerful", "graceful", "majestic", "peaceful", "spirited", "towering",
	},

	Adposition: {
		"at", "by", "in", "of", "on", "to", "up",
		"for", "off", "out", "per", "via",
		"amid", "atop", "from", "into", "near", "onto", "over", "past",
		"upon", "with",
		"about", "above", "after", "along", "among", "below", "under",
		"until",
		"across", "amidst", "before", "behind", "beside", "beyond",
		"during", "inside", "toward", "within",
		"against", "barring", "beneath", "between", "through", "without",
	},

	Adverb: {
		"now", "too", "yet", "far", "off",
		"away", "back", "down", "here", "just", "only", "soon", "then",
		"very", "well",
		"again", "ahead", "aloud", "apart", "often", "quite", "there",
		"today", "twice",
		"almost", "always", "calmly", "gently", "kindly", "madly",
		"mostly", "nearly", "rarely", "safely", "seldom", "slowly",
		"softly", "warmly", "wildly",
		"bravely", "briefly", "eagerly", "happily", "quickly", "quietly",
		"sharply", "swiftly",
		"brightly", "casually", "politely", "reliably", "smoothly", "suddenly",
	},

	Auxiliary: {
		"am", "be", "can", "did", "do", "does", "had", "has", "have",
		"is", "may", "must", "was", "were", "will",
		"been", "being", "shall",
		"could", "might", "would",
		"should",
	},

	CoordinatingConjunction: {
		"and", "but", "for", "nor", "or", "so", "yet", "plus",
		"either", "neither",
	},

	Determiner: {
		"a", "an", "the", "all", "any", "both", "each", "few", "her",
		"his", "its", "my", "no", "our", "some", "such", "that", "their",
		"these", "this", "those", "what", "which", "whose", "your",
		"another", "enough", "every", "several",
	},

	Interjection: {
		"ah", "aha", "alas", "aye", "boo", "bravo", "cheers", "eek",
		"gosh", "hey", "hmm", "hooray", "howdy", "huh", "hurrah", "oh",
		"oops", "ouch", "phew", "psst", "shh", "ugh", "whoa", "wow",
		"yay", "yikes", "yippee",
	},

	Noun: {
		"ant", "bay", "cob", "dew", "elm", "fig", "gem", "hut", "ink",
		"jar", "keg", "oak", "owl", "ram", "sap", "tub", "urn", "yak",
		"barn", "cape", "dome", "fern", "gate", "harp", "kiln", "lake",
		"mast", "nest", "opal", "pond", "quay", "reef", "silo", "tarn",
		"vane", "wren",
		"adobe", "brook", "cedar", "delta", "ember", "flint", "gorge",
		"heron", "inlet", "joust", "knoll", "lapel", "maple", "niche",
		"olive", "prism", "quilt", "ridge", "spool", "thorn", "valve",
		"wharf",
		"anchor", "bucket", "canyon", "copper", "falcon", "garden",
		"hamlet", "island", "jigsaw", "kernel", "lagoon", "magnet",
		"marble", "meadow", "misuse", "nugget", "orchid", "pebble",
		"puzzle", "saddle", "tartan", "turnip", "vacuum", "violin",
		"walnut", "willow",
		"almanac", "bandana", "caravan", "compass", "dolphin", "echelon",
		"glacier", "harvest", "lantern", "monsoon", "pendant", "tundra",
		"windmill", "workshop",
	},

	Numeral: {
		"one", "two", "six", "ten",
		"five", "four", "nine", "zero",
		"eight", "dozen", "fifty", "forty", "seven", "sixty", "third",
		"three",
		"eighty", "eleven", "ninety", "second", "thirty", "twelve",
		"twenty",
		"billion", "fifteen", "hundred", "million", "seventy", "sixteen",
		"thousand", "fourteen",
	},

	Particle: {
		"to", "not", "off", "out", "up", "down", "away", "back", "over",
		"apart", "aside", "along", "around", "forth",
	},

	Pronoun: {
		"he", "it", "me", "she", "us", "we", "you", "who", "all",
		"hers", "mine", "ours", "that", "them", "they", "this", "whom",
		"yours", "those", "whose",
		"anyone", "itself", "myself", "nobody", "theirs",
		"anybody", "herself", "himself", "someone", "somebody",
		"everyone", "yourself", "everybody",
	},

	ProperNoun: {
		"rio", "fuji", "oslo", "lima", "nile", "bern", "kiev",
		"cairo", "paris", "tokyo", "andes", "chile", "delhi", "ghana",
		"kenya", "seoul", "texas",
		"amazon", "athens", "berlin", "bogota", "dublin", "geneva",
		"havana", "lisbon", "london", "madrid", "monaco", "munich",
		"nairobi", "norway", "ottawa", "prague", "saturn", "sahara",
		"sydney", "tahiti", "vienna", "warsaw", "zagreb",
		"everest", "jakarta", "jupiter", "neptune", "pacific",
	},

	Punctuation: {
		".", ",", ";", ":", "!", "?", "-", "--", "...", "(", ")",
		"[", "]", "{", "}", "\"", "'",
	},

	SubordinatingConjunction: {
		"as", "if", "lest", "once", "than", "that", "when", "while",
		"after", "since", "until", "where",
		"before", "though", "unless",
		"because", "whereas", "whether",
		"although", "whenever", "wherever",
	},

	Symbol: {
		"$", "%", "+", "=", "#", "@", "&", "*", "/", "^", "~",
		"<3", ":)", ":(", ":-)", ":-(", ";-)", "o/",
	},

	Verb: {
		"dig", "fix", "hop", "jog", "mix", "nab", "row", "sip", "tug",
		"zip",
		"bake", "dart", "flip", "glow", "hike", "knit", "leap", "mend",
		"peek", "roam", "sail", "toss", "wave", "yawn",
		"amble", "boost", "carve", "dodge", "erase", "fetch", "glide",
		"hoist", "knead", "lunge", "march", "nudge", "paint",
		"quote", "raise", "skate", "trace", "vault", "whisk",
		"borrow", "bounce", "gather", "invent", "juggle", "mumble",
		"polish", "ponder", "ramble", "rescue", "scrape", "sprint",
		"tangle", "tinker", "wander", "wobble",
		"assemble", "decorate", "navigate", "organize", "practice",
		"sharpen", "whittle",
	},
}
