package moodreview

import (
	"html"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

// VADER compound score cutoffs.
const (
	vaderPositive = 0.05
	vaderNegative = -0.05
)

var (
	markdownLinkRE = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	smartQuotes    = strings.NewReplacer("\u2018", "'", "\u2019", "'", "\u201c", `"`, "\u201d", `"`)
)

// VaderClassifier scores raw review text with the VADER lexicon. It needs
// no training and is used when no trained model is available.
type VaderClassifier struct {
	analyzer   *govader.SentimentIntensityAnalyzer
	normalizer *Normalizer
}

// NewVaderClassifier returns a lexicon Predictor. normalizer may be nil, in
// which case predictions carry no normalized text.
func NewVaderClassifier(normalizer *Normalizer) *VaderClassifier {
	return &VaderClassifier{
		analyzer:   govader.NewSentimentIntensityAnalyzer(),
		normalizer: normalizer,
	}
}

// Compound returns the VADER compound score of text after stripping
// markdown and links.
func (v *VaderClassifier) Compound(text string) float64 {
	return v.analyzer.PolarityScores(plainText(text)).Compound
}

// Predict implements Predictor. Missing reviews are neutral.
func (v *VaderClassifier) Predict(r Review) (Prediction, error) {
	var p Prediction
	if v.normalizer != nil {
		normalized, err := v.normalizer.NormalizeReview(r)
		if err != nil {
			return Prediction{}, err
		}
		p.Normalized = normalized
	}
	if r.Missing {
		p.Sentiment = Neutral
		return p, nil
	}
	p.Sentiment = vaderSentiment(v.Compound(r.Text))
	return p, nil
}

func vaderSentiment(score float64) Sentiment {
	switch {
	case score >= vaderPositive:
		return Positive
	case score <= vaderNegative:
		return Negative
	default:
		return Neutral
	}
}

func plainText(input string) string {
	input = markdownLinkRE.ReplaceAllString(input, "$1")
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	text := markupRE.ReplaceAllString(string(output), " ")
	text = smartQuotes.Replace(html.UnescapeString(text))
	text = urlRE.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}
