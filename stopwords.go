package moodreview

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
)

// A StopwordSet reports whether a lowercase token carries too little
// meaning to keep.
type StopwordSet interface {
	Contains(word string) bool
}

// englishStopwords is the NLTK English list.
var englishStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're",
	"you've", "you'll", "you'd", "your", "yours", "yourself", "yourselves", "he",
	"him", "his", "himself", "she", "she's", "her", "hers", "herself", "it", "it's",
	"its", "itself", "they", "them", "their", "theirs", "themselves", "what", "which",
	"who", "whom", "this", "that", "that'll", "these", "those", "am", "is", "are",
	"was", "were", "be", "been", "being", "have", "has", "had", "having", "do",
	"does", "did", "doing", "a", "an", "the", "and", "but", "if", "or", "because",
	"as", "until", "while", "of", "at", "by", "for", "with", "about", "against",
	"between", "into", "through", "during", "before", "after", "above", "below",
	"to", "from", "up", "down", "in", "out", "on", "off", "over", "under", "again",
	"further", "then", "once", "here", "there", "when", "where", "why", "how",
	"all", "any", "both", "each", "few", "more", "most", "other", "some", "such",
	"no", "nor", "not", "only", "own", "same", "so", "than", "too", "very", "s",
	"t", "can", "will", "just", "don", "don't", "should", "should've", "now", "d",
	"ll", "m", "o", "re", "ve", "y", "ain", "aren", "aren't", "couldn", "couldn't",
	"didn", "didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't",
	"haven", "haven't", "isn", "isn't", "ma", "mightn", "mightn't", "mustn",
	"mustn't", "needn", "needn't", "shan", "shan't", "shouldn", "shouldn't",
	"wasn", "wasn't", "weren", "weren't", "won", "won't", "wouldn", "wouldn't",
}

// The stopwords package splits text on [\pL\p{Mc}\p{Mn}-_'] runs. A token
// made only of these characters is looked up as one word.
var singleSegment = regexp.MustCompile(`^[\pL\p{Mc}\p{Mn}0-9_]+$`)

// NewEnglishStopwords returns the NLTK English list as a set.
func NewEnglishStopwords() StopwordMap {
	return NewStopwordMap(englishStopwords...)
}

// ExtendedStopwords is the larger list bundled with bbalet/stopwords for a
// language. It drops many more function words than the English set.
type ExtendedStopwords struct {
	lang string
}

// NewExtendedStopwords returns the bundled list for the ISO 639-1 code lang.
func NewExtendedStopwords(lang string) *ExtendedStopwords {
	return &ExtendedStopwords{lang: lang}
}

// Contains reports whether word is removed entirely as a stopword. The
// stopwords package also strips digits, so tokens without a letter are
// never stopwords.
func (s *ExtendedStopwords) Contains(word string) bool {
	if !singleSegment.MatchString(word) || !strings.ContainsFunc(word, unicode.IsLetter) {
		return false
	}
	return strings.TrimSpace(stopwords.CleanString(word, s.lang, false)) == ""
}

// StopwordMap is a plain in-memory StopwordSet.
type StopwordMap map[string]struct{}

// NewStopwordMap builds a set from words.
func NewStopwordMap(words ...string) StopwordMap {
	m := make(StopwordMap, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// Contains reports whether word is in the map.
func (m StopwordMap) Contains(word string) bool {
	_, ok := m[word]
	return ok
}
