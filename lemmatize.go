package moodreview

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// A Lemmatizer reduces a word to its dictionary form for the given category.
type Lemmatizer interface {
	Lemmatize(word string, pos POS) (string, error)
}

// Dictionary is the lexicon a WordNetLemmatizer validates candidates
// against. *golem.Lemmatizer satisfies it.
type Dictionary interface {
	Lemmas(word string) []string
	InDict(word string) bool
}

type detachment struct {
	suffix, ending string
}

// Inflection rules per category, tried in order.
var detachments = map[POS][]detachment{
	Noun: {
		{"s", ""}, {"ses", "s"}, {"ves", "f"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	Verb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	Adjective: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
		{"ier", "y"}, {"iest", "y"},
	},
	Adverb: nil,
}

// WordNetLemmatizer lemmatizes English words in the manner of WordNet's
// morphy: irregular forms first, then suffix detachment, keeping only
// candidates the dictionary knows.
type WordNetLemmatizer struct {
	dict Dictionary
}

// NewWordNetLemmatizer loads golem's English dictionary.
func NewWordNetLemmatizer() (*WordNetLemmatizer, error) {
	dict, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load english lemma dictionary: %w", err)
	}
	return &WordNetLemmatizer{dict: dict}, nil
}

// NewWordNetLemmatizerWithDictionary uses the provided dictionary.
func NewWordNetLemmatizerWithDictionary(dict Dictionary) *WordNetLemmatizer {
	return &WordNetLemmatizer{dict: dict}
}

// Lemmatize returns the base form of word as a pos. Words it cannot reduce
// are returned unchanged.
func (l *WordNetLemmatizer) Lemmatize(word string, pos POS) (string, error) {
	rules, ok := detachments[pos]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPOS, byte(pos))
	}
	if word == "" {
		return "", nil
	}

	if base, found := lemmaExceptions[pos][word]; found {
		return base, nil
	}

	lemmas := l.dict.Lemmas(word)
	best := ""
	for _, cand := range candidates(word, pos, rules) {
		if !l.valid(word, cand, lemmas) {
			continue
		}
		if best == "" || len(cand) < len(best) {
			best = cand
		}
	}
	if best != "" {
		return best, nil
	}

	// Irregular verb forms that no rule reaches, e.g. "sang". Forms that are
	// also base forms ("rose") are in lemmaExceptions.
	if pos == Verb && l.dict.InDict(word) && len(lemmas) > 0 && !slices.Contains(lemmas, word) {
		return lemmas[0], nil
	}
	return word, nil
}

// valid reports whether cand is an acceptable lemma of word. Known words
// are checked against their own lemma list; unknown ones accept any
// dictionary form other than themselves. golem answers Lemmas for an
// unknown word with the word itself, so InDict tells the two apart.
func (l *WordNetLemmatizer) valid(word, cand string, lemmas []string) bool {
	if cand == "" {
		return false
	}
	if l.dict.InDict(word) {
		return slices.Contains(lemmas, cand)
	}
	return cand != word && l.dict.InDict(cand)
}

func candidates(word string, pos POS, rules []detachment) []string {
	out := []string{word}
	for _, r := range rules {
		if !strings.HasSuffix(word, r.suffix) || len(word) <= len(r.suffix) {
			continue
		}
		stem := word[:len(word)-len(r.suffix)]
		out = append(out, stem+r.ending)

		// running -> runn -> run, bigger -> bigg -> big
		if (pos == Verb || pos == Adjective) && r.ending == "" && doubled(stem) {
			out = append(out, stem[:len(stem)-1])
		}
	}
	return out
}

func doubled(stem string) bool {
	n := len(stem)
	if n < 3 || stem[n-1] != stem[n-2] {
		return false
	}
	return !strings.ContainsRune("aeiouy", rune(stem[n-1]))
}
