package moodreview

import "errors"

var (
	// ErrTagCount is returned when a tagger yields a different number of
	// tags than it was given tokens.
	ErrTagCount = errors.New("moodreview: tag count does not match token count")

	// ErrTokenMismatch is returned when the tagger tokenizes the input
	// differently from the normalizer.
	ErrTokenMismatch = errors.New("moodreview: tagger tokens do not match input tokens")

	// ErrUnknownPOS is returned by a Lemmatizer for an unsupported category.
	ErrUnknownPOS = errors.New("moodreview: unknown part-of-speech category")

	ErrInvalidSentiment = errors.New("moodreview: invalid sentiment label")
	ErrColumnNotFound   = errors.New("moodreview: column not found")
	ErrNoReviews        = errors.New("moodreview: no reviews")
	ErrNoTrainingData   = errors.New("moodreview: no labeled reviews to train on")
	ErrModelNotFitted   = errors.New("moodreview: model has not been fitted")
	ErrDimension        = errors.New("moodreview: vector dimension mismatch")
)
