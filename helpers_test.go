package moodreview

import (
	"testing"
)

// stubTagger tags every token "NN" unless listed in tags.
type stubTagger struct {
	tags  map[string]string
	err   error
	short bool
	seen  [][]string
}

func (s *stubTagger) Tag(tokens []string) ([]string, error) {
	s.seen = append(s.seen, append([]string(nil), tokens...))
	if s.err != nil {
		return nil, s.err
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if tag, ok := s.tags[tok]; ok {
			out[i] = tag
		} else {
			out[i] = "NN"
		}
	}
	if s.short && len(out) > 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

type fakeDictionary map[string][]string

// Lemmas answers an unknown word with the word itself, as golem does.
func (d fakeDictionary) Lemmas(word string) []string {
	if lemmas, ok := d[word]; ok {
		return lemmas
	}
	return []string{word}
}

func (d fakeDictionary) InDict(word string) bool {
	_, ok := d[word]
	return ok
}

var testDictionary = fakeDictionary{
	"running":  {"run"},
	"run":      {"run"},
	"reviews":  {"review"},
	"review":   {"review"},
	"products": {"product"},
	"product":  {"product"},
	"great":    {"great"},
	"love":     {"love"},
	"loved":    {"love"},
	"glasses":  {"glass"},
	"glass":    {"glass"},
	"bigger":   {"big"},
	"big":      {"big"},
	"happier":  {"happy"},
	"happy":    {"happy"},
	"sang":     {"sing"},
	"sing":     {"sing"},
	"news":     {"news"},
	"new":      {"new"},
	"stopped":  {"stop"},
	"stop":     {"stop"},
	"falling":  {"fall"},
	"fall":     {"fall"},
	"better":   {"good", "well"},
	"good":     {"good"},
	"gadget":   {"gadget"},
	"check":    {"check"},
	"text":     {"text"},
	"rose":     {"rose"},
}

func newTestNormalizer(t *testing.T, tagger Tagger) *Normalizer {
	t.Helper()
	n, err := NewNormalizer(
		UsingTagger(tagger),
		UsingLemmatizer(NewWordNetLemmatizerWithDictionary(testDictionary)),
		UsingStopwords(NewStopwordMap(englishStopwords...)),
	)
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}
	return n
}

// toyCorpus is a separable, already-normalized training set.
var toyCorpus = []struct {
	text  string
	label Sentiment
}{
	{"great love excellent", Positive},
	{"love great", Positive},
	{"excellent great", Positive},
	{"awful hate terrible", Negative},
	{"hate awful", Negative},
	{"terrible awful", Negative},
	{"okay average fine", Neutral},
	{"average okay", Neutral},
	{"fine okay", Neutral},
}

func toyReviews(repeat int) []Review {
	var reviews []Review
	for i := 0; i < repeat; i++ {
		for _, ex := range toyCorpus {
			reviews = append(reviews, Review{Index: len(reviews), Text: ex.text, Label: ex.label, Labeled: true})
		}
	}
	return reviews
}
