package moodreview

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

func testTrainingConfig() TrainingConfig {
	config := DefaultTrainingConfig()
	config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return config
}

func TestTrainer(t *testing.T) {
	reviews := toyReviews(5)
	reviews = append(reviews,
		Review{Index: len(reviews), Missing: true, Label: Positive, Labeled: true},
		Review{Index: len(reviews) + 1, Text: "great love"},
	)

	trainer := NewTrainer(newTestNormalizer(t, &stubTagger{}), testTrainingConfig())
	model, metrics, err := trainer.Train(reviews)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}

	if metrics.Examples != 45 {
		t.Errorf("Examples = %d, want 45", metrics.Examples)
	}
	if metrics.TrainSize != 36 || metrics.ValidationSize != 9 {
		t.Errorf("split = %d/%d, want 36/9", metrics.TrainSize, metrics.ValidationSize)
	}
	for _, s := range Sentiments {
		if metrics.ClassCounts[s] != 15 {
			t.Errorf("ClassCounts[%s] = %d, want 15", s, metrics.ClassCounts[s])
		}
	}
	if metrics.Vocabulary == 0 || metrics.Vocabulary > 9 {
		t.Errorf("Vocabulary = %d", metrics.Vocabulary)
	}
	if metrics.Validation.Accuracy < 0.99 {
		t.Errorf("validation accuracy = %v", metrics.Validation.Accuracy)
	}
	if metrics.Validation.MacroF1 < 0.99 {
		t.Errorf("macro F1 = %v", metrics.Validation.MacroF1)
	}

	got, err := model.Predict("hate awful")
	if err != nil {
		t.Fatal(err)
	}
	if got != Negative {
		t.Errorf("Predict = %s, want negative", got)
	}
}

func TestTrainerDeterministic(t *testing.T) {
	normalizer := newTestNormalizer(t, &stubTagger{})
	_, first, err := NewTrainer(normalizer, testTrainingConfig()).Train(toyReviews(4))
	if err != nil {
		t.Fatal(err)
	}
	_, second, err := NewTrainer(normalizer, testTrainingConfig()).Train(toyReviews(4))
	if err != nil {
		t.Fatal(err)
	}
	if first.Validation.Accuracy != second.Validation.Accuracy || first.Vocabulary != second.Vocabulary {
		t.Errorf("same seed gave %+v and %+v", first.Validation, second.Validation)
	}
}

func TestTrainerNoValidation(t *testing.T) {
	config := testTrainingConfig()
	config.ValidationSplit = 0
	_, metrics, err := NewTrainer(newTestNormalizer(t, &stubTagger{}), config).Train(toyReviews(1))
	if err != nil {
		t.Fatal(err)
	}
	if metrics.TrainSize != 9 || metrics.ValidationSize != 0 {
		t.Errorf("split = %d/%d, want 9/0", metrics.TrainSize, metrics.ValidationSize)
	}
}

func TestTrainerErrors(t *testing.T) {
	normalizer := newTestNormalizer(t, &stubTagger{})

	unlabeled := []Review{NewReview("great"), {Missing: true}}
	if _, _, err := NewTrainer(normalizer, testTrainingConfig()).Train(unlabeled); !errors.Is(err, ErrNoTrainingData) {
		t.Errorf("unlabeled error = %v, want %v", err, ErrNoTrainingData)
	}

	onlyStopwords := []Review{
		{Text: "The and a", Label: Positive, Labeled: true},
		{Index: 1, Text: "is it?", Label: Negative, Labeled: true},
	}
	_, _, err := NewTrainer(normalizer, testTrainingConfig()).Train(onlyStopwords)
	if !errors.Is(err, ErrNoTrainingData) {
		t.Errorf("empty vocabulary error = %v, want %v", err, ErrNoTrainingData)
	}
	if errors.Is(err, ErrModelNotFitted) {
		t.Errorf("empty vocabulary reported as %v", ErrModelNotFitted)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	config := testTrainingConfig()
	config.Context = ctx
	if _, _, err := NewTrainer(normalizer, config).Train(toyReviews(1)); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled error = %v, want %v", err, context.Canceled)
	}

	boom := errors.New("tagger down")
	broken := newTestNormalizer(t, &stubTagger{err: boom})
	if _, _, err := NewTrainer(broken, testTrainingConfig()).Train(toyReviews(1)); !errors.Is(err, boom) {
		t.Errorf("normalizer error = %v, want %v", err, boom)
	}
}
