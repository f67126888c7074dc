package moodreview

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// A Vectorizer maps normalized text to L2-normalized TF-IDF vectors over a
// vocabulary learned by Fit.
type Vectorizer struct {
	Vocabulary map[string]int
	IDF        []float64
	MinDF      int // Terms found in fewer documents are dropped; 0 means 1.
}

// NewVectorizer returns an unfitted Vectorizer.
func NewVectorizer(minDF int) *Vectorizer {
	return &Vectorizer{MinDF: minDF}
}

// Fit learns the vocabulary and inverse document frequencies of docs. Each
// document is a normalized string of space-separated terms.
func (v *Vectorizer) Fit(docs []string) {
	minDF := v.MinDF
	if minDF < 1 {
		minDF = 1
	}

	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range strings.Fields(doc) {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	terms := make([]string, 0, len(df))
	for term, count := range df {
		if count >= minDF {
			terms = append(terms, term)
		}
	}
	sort.Strings(terms)

	n := float64(len(docs))
	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	for i, term := range terms {
		v.Vocabulary[term] = i
		v.IDF[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
}

// Len returns the vocabulary size.
func (v *Vectorizer) Len() int {
	return len(v.IDF)
}

// Transform returns doc's TF-IDF vector. Unknown terms are ignored; a
// document with no known terms maps to the zero vector.
func (v *Vectorizer) Transform(doc string) (*mat.VecDense, error) {
	if v.Len() == 0 {
		return nil, ErrModelNotFitted
	}

	data := make([]float64, v.Len())
	for _, term := range strings.Fields(doc) {
		if idx, found := v.Vocabulary[term]; found {
			data[idx]++
		}
	}
	floats.Mul(data, v.IDF)
	if norm := floats.Norm(data, 2); norm > 0 {
		floats.Scale(1/norm, data)
	}
	return mat.NewVecDense(len(data), data), nil
}
