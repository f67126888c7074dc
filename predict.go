package moodreview

import "fmt"

// A Predictor classifies reviews.
type Predictor interface {
	Predict(r Review) (Prediction, error)
}

// Pipeline normalizes a review and classifies it with a trained Model.
type Pipeline struct {
	normalizer *Normalizer
	model      *Model
}

// NewPipeline returns a Predictor backed by model.
func NewPipeline(normalizer *Normalizer, model *Model) *Pipeline {
	return &Pipeline{normalizer: normalizer, model: model}
}

// Predict implements Predictor.
func (p *Pipeline) Predict(r Review) (Prediction, error) {
	normalized, err := p.normalizer.NormalizeReview(r)
	if err != nil {
		return Prediction{}, err
	}
	sentiment, err := p.model.Predict(normalized)
	if err != nil {
		return Prediction{}, fmt.Errorf("predict review %d: %w", r.Index, err)
	}
	return Prediction{Sentiment: sentiment, Normalized: normalized}, nil
}
