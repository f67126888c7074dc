package moodreview

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Character classes shared by the cleaning patterns and the token split.
// Word characters are Unicode letters, numbers and the underscore.
const (
	wordClass  = `\p{L}\p{N}_`
	spaceClass = `\s\v\x{1C}-\x{1F}\x{85}\p{Z}`
)

var (
	urlRE     = regexp.MustCompile(`http[^` + spaceClass + `]+|www\.[^` + spaceClass + `]+`)
	mentionRE = regexp.MustCompile(`@[` + wordClass + `]+`)
	markupRE  = regexp.MustCompile(`<.*?>`)
	symbolRE  = regexp.MustCompile(`[^` + wordClass + spaceClass + `]`)
)

// A NormalizerOpt represents a setting that changes how a Normalizer is
// built.
//
// For example, it might swap in a different tagger:
//
//	n, err := moodreview.NewNormalizer(moodreview.UsingTagger(myTagger))
type NormalizerOpt func(n *Normalizer)

// UsingTagger specifies the Tagger to use.
func UsingTagger(t Tagger) NormalizerOpt {
	return func(n *Normalizer) {
		n.tagger = t
	}
}

// UsingLemmatizer specifies the Lemmatizer to use.
func UsingLemmatizer(l Lemmatizer) NormalizerOpt {
	return func(n *Normalizer) {
		n.lemmatizer = l
	}
}

// UsingStopwords specifies the StopwordSet to use.
func UsingStopwords(s StopwordSet) NormalizerOpt {
	return func(n *Normalizer) {
		n.stopwords = s
	}
}

// A Normalizer turns raw review text into the lowercase, lemmatized,
// stopword-free string the classifier is trained on. It holds only
// read-only resources and is safe for concurrent use.
type Normalizer struct {
	tagger     Tagger
	lemmatizer Lemmatizer
	stopwords  StopwordSet
}

// NewNormalizer builds a Normalizer. Resources not supplied through options
// are loaded here: prose's tagger, golem's English dictionary and the
// English stopword list.
func NewNormalizer(opts ...NormalizerOpt) (*Normalizer, error) {
	n := new(Normalizer)
	for _, applyOpt := range opts {
		applyOpt(n)
	}

	if n.tagger == nil {
		n.tagger = NewProseTagger()
	}
	if n.lemmatizer == nil {
		lem, err := NewWordNetLemmatizer()
		if err != nil {
			return nil, err
		}
		n.lemmatizer = lem
	}
	if n.stopwords == nil {
		n.stopwords = NewEnglishStopwords()
	}
	return n, nil
}

// Clean strips URLs, hashtag markers, mentions, markup and punctuation, in
// that order. Case is preserved.
func Clean(text string) string {
	text = urlRE.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "#", "")
	text = mentionRE.ReplaceAllString(text, "")
	text = markupRE.ReplaceAllString(text, "")
	return symbolRE.ReplaceAllString(text, "")
}

// Tokenize cleans and lowercases text and splits it on whitespace.
// Lowercasing uses the full Unicode mappings, so "İ" becomes "i̇" and a
// word-final "Σ" becomes "ς".
func Tokenize(text string) []string {
	// A Caser holds state and is not shared between calls.
	lower := cases.Lower(language.Und)
	return strings.FieldsFunc(lower.String(Clean(text)), isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1C && r <= 0x1F)
}

// Analyze tokenizes text and tags, filters and lemmatizes every token.
// Stopwords are kept in the result with Stop set and no Lemma.
func (n *Normalizer) Analyze(text string) ([]Token, error) {
	words := Tokenize(text)
	if len(words) == 0 {
		return nil, nil
	}

	tags, err := n.tagger.Tag(words)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	if len(tags) != len(words) {
		return nil, fmt.Errorf("normalize: %w: got %d, want %d", ErrTagCount, len(tags), len(words))
	}

	tokens := make([]Token, len(words))
	for i, word := range words {
		tok := Token{Text: word, Tag: tags[i], POS: WordNetPOS(tags[i])}
		if n.stopwords.Contains(word) {
			tok.Stop = true
			tokens[i] = tok
			continue
		}
		tok.Lemma, err = n.lemmatizer.Lemmatize(word, tok.POS)
		if err != nil {
			return nil, fmt.Errorf("normalize: lemmatize %q as %s: %w", word, tok.POS, err)
		}
		tokens[i] = tok
	}
	return tokens, nil
}

// Normalize returns the space-joined lemmas of text's content words.
//
// For example,
//
//	n.Normalize("Great product! #loveit @brand") // "great product loveit"
func (n *Normalizer) Normalize(text string) (string, error) {
	tokens, err := n.Analyze(text)
	if err != nil {
		return "", err
	}

	lemmas := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Stop {
			continue
		}
		lemmas = append(lemmas, tok.Lemma)
	}
	return strings.Join(lemmas, " "), nil
}

// NormalizeReview normalizes r's text. A missing review normalizes to the
// empty string.
func (n *Normalizer) NormalizeReview(r Review) (string, error) {
	if r.Missing {
		return "", nil
	}
	return n.Normalize(r.Text)
}
