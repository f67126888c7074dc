package moodreview

import (
	"sync"
)

// A Browser steps through a dataset one review at a time, classifying each
// review as it is shown.
type Browser struct {
	reviews   []Review
	predictor Predictor
	splitter  *SentenceSplitter

	mu    sync.Mutex
	index int
}

// NewBrowser starts at the first review. splitter may be nil, in which
// case Feedback carries the whole text as one sentence.
func NewBrowser(reviews []Review, predictor Predictor, splitter *SentenceSplitter) (*Browser, error) {
	if len(reviews) == 0 {
		return nil, ErrNoReviews
	}
	return &Browser{reviews: reviews, predictor: predictor, splitter: splitter}, nil
}

// Len returns the number of reviews.
func (b *Browser) Len() int {
	return len(b.reviews)
}

// Current returns feedback for the review under the cursor.
func (b *Browser) Current() (Feedback, error) {
	b.mu.Lock()
	index := b.index
	b.mu.Unlock()
	return b.feedback(index)
}

// Next advances the cursor, wrapping after the last review.
func (b *Browser) Next() (Feedback, error) {
	b.mu.Lock()
	b.index = (b.index + 1) % len(b.reviews)
	index := b.index
	b.mu.Unlock()
	return b.feedback(index)
}

// Seek moves the cursor to index, taken modulo the number of reviews.
func (b *Browser) Seek(index int) (Feedback, error) {
	n := len(b.reviews)
	index = ((index % n) + n) % n

	b.mu.Lock()
	b.index = index
	b.mu.Unlock()
	return b.feedback(index)
}

func (b *Browser) feedback(index int) (Feedback, error) {
	review := b.reviews[index]
	prediction, err := b.predictor.Predict(review)
	if err != nil {
		return Feedback{}, err
	}

	fb := Feedback{
		Index:      index,
		Text:       review.Text,
		Normalized: prediction.Normalized,
		Sentiment:  prediction.Sentiment,
		Emoji:      EmojiFor(prediction.Sentiment),
	}
	switch {
	case review.Missing:
	case b.splitter != nil:
		fb.Sentences = b.splitter.Split(review.Text)
	default:
		fb.Sentences = []string{review.Text}
	}
	return fb, nil
}
