package moodreview

// POS is a lemmatization category, the coarse part of speech that selects
// which inflection rules apply to a word.
type POS byte

const (
	Noun      POS = 'n'
	Verb      POS = 'v'
	Adjective POS = 'a'
	Adverb    POS = 'r'
)

// String returns the category's name.
func (p POS) String() string {
	switch p {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adjective"
	case Adverb:
		return "adverb"
	default:
		return "unknown"
	}
}

// WordNetPOS maps a Penn Treebank tag to a lemmatization category by its
// first letter. Anything unrecognized, including an empty tag, is a noun.
func WordNetPOS(tag string) POS {
	if tag == "" {
		return Noun
	}
	switch tag[0] {
	case 'J':
		return Adjective
	case 'V':
		return Verb
	case 'N':
		return Noun
	case 'R':
		return Adverb
	default:
		return Noun
	}
}
