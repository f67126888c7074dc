package moodreview

import (
	"fmt"
	"strconv"
	"strings"
)

// A Review represents one record of a review dataset.
type Review struct {
	Index   int       // The record's position in its dataset.
	Text    string    // The review's raw text.
	Missing bool      // True if the record had no text at all.
	Label   Sentiment // The annotated sentiment, if Labeled.
	Labeled bool      // True if Label was present and parsed.
}

// NewReview returns a present, unlabeled review.
func NewReview(text string) Review {
	return Review{Text: text}
}

// A Token represents a normalized word along with its part-of-speech tag.
type Token struct {
	Text  string // The token's lowercase content.
	Tag   string // The token's Penn Treebank tag.
	POS   POS    // The lemmatization category derived from Tag.
	Lemma string // The token's base form; empty for stopwords.
	Stop  bool   // True if the token is a stopword.
}

// Sentiment represents a review's predicted or annotated polarity.
type Sentiment int

const (
	Negative Sentiment = -1
	Neutral  Sentiment = 0
	Positive Sentiment = 1
)

// Sentiments lists every class in index order.
var Sentiments = []Sentiment{Negative, Neutral, Positive}

// String returns the class name.
func (s Sentiment) String() string {
	switch s {
	case Negative:
		return "negative"
	case Neutral:
		return "neutral"
	case Positive:
		return "positive"
	default:
		return "sentiment(" + strconv.Itoa(int(s)) + ")"
	}
}

// Valid reports whether s is one of the three known classes.
func (s Sentiment) Valid() bool {
	return s >= Negative && s <= Positive
}

// ParseSentiment accepts -1/0/1 or negative/neutral/positive.
func ParseSentiment(raw string) (Sentiment, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "-1", "negative", "neg":
		return Negative, nil
	case "0", "neutral", "neu":
		return Neutral, nil
	case "1", "+1", "positive", "pos":
		return Positive, nil
	}
	return Neutral, fmt.Errorf("%w: %q", ErrInvalidSentiment, raw)
}

// A Prediction is the result of classifying a single review.
type Prediction struct {
	Sentiment  Sentiment
	Normalized string // The normalized text the classifier saw.
}

// Feedback is everything needed to display one review.
type Feedback struct {
	Index      int
	Text       string
	Sentences  []string
	Normalized string
	Sentiment  Sentiment
	Emoji      Emoji
}
