package moodreview

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// A Tagger assigns a Penn Treebank part-of-speech tag to each token. The
// whole sequence is tagged at once since a token's tag depends on its
// neighbors.
type Tagger interface {
	Tag(tokens []string) ([]string, error)
}

// ProseTagger tags tokens with prose's averaged perceptron.
type ProseTagger struct {
	model *prose.Model
}

// NewProseTagger loads the perceptron weights once.
func NewProseTagger() *ProseTagger {
	return &ProseTagger{model: prose.ModelFromData("moodreview")}
}

// Tag returns one tag per token.
//
// prose may split a token further, as in "cannot"; the pieces are joined
// back and the token takes the tag of its first piece. Pieces that do not
// rebuild the input are reported as ErrTokenMismatch.
func (t *ProseTagger) Tag(tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	doc, err := prose.NewDocument(
		strings.Join(tokens, " "),
		prose.UsingModel(t.model),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tag %d tokens: %w", len(tokens), err)
	}
	return alignTags(tokens, doc.Tokens())
}

func alignTags(tokens []string, tagged []prose.Token) ([]string, error) {
	tags := make([]string, len(tokens))
	j := 0
	for i, want := range tokens {
		if j >= len(tagged) {
			return nil, fmt.Errorf("%w: ran out of tags at %q", ErrTokenMismatch, want)
		}
		tags[i] = tagged[j].Tag
		got := tagged[j].Text
		j++
		for got != want && len(got) < len(want) && j < len(tagged) {
			got += tagged[j].Text
			j++
		}
		if got != want {
			return nil, fmt.Errorf("%w: %q at %d, want %q", ErrTokenMismatch, got, i, want)
		}
	}
	if j != len(tagged) {
		return nil, fmt.Errorf("%w: %d extra tokens", ErrTokenMismatch, len(tagged)-j)
	}
	return tags, nil
}
