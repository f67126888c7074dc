package moodreview

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"
)

// TrainingConfig contains configuration for model training
type TrainingConfig struct {
	ValidationSplit float64 // Share of examples held out; 0 disables validation.
	Seed            int64   // Shuffle seed.
	Alpha           float64 // Naive Bayes smoothing.
	MinDF           int     // Vectorizer minimum document frequency.
	Name            string  // Name given to the trained Model.
	Context         context.Context
	Logger          *slog.Logger
}

// DefaultTrainingConfig returns a default training configuration
func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		ValidationSplit: 0.2,
		Seed:            42,
		Alpha:           1.0,
		MinDF:           1,
		Name:            "sentiment",
		Context:         context.Background(),
	}
}

// TrainingMetrics contains metrics from training
type TrainingMetrics struct {
	Examples       int
	TrainSize      int
	ValidationSize int
	Vocabulary     int
	ClassCounts    map[Sentiment]int
	Validation     ValidationResult
	TrainingTime   time.Duration
}

// ValidationResult contains validation metrics
type ValidationResult struct {
	Accuracy float64
	MacroF1  float64
	Classes  map[Sentiment]ClassMetrics
}

// ClassMetrics holds one class's validation scores.
type ClassMetrics struct {
	Precision float64
	Recall    float64
	F1Score   float64
	Support   int
}

// Trainer fits sentiment Models from labeled reviews. Every review passes
// through the same Normalizer used at prediction time.
type Trainer struct {
	config     TrainingConfig
	normalizer *Normalizer
}

// NewTrainer creates a new trainer with the given configuration
func NewTrainer(normalizer *Normalizer, config TrainingConfig) *Trainer {
	if config.Context == nil {
		config.Context = context.Background()
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Trainer{config: config, normalizer: normalizer}
}

type example struct {
	text  string
	label Sentiment
}

// Train normalizes the labeled, present reviews, holds out a validation
// share and fits a Model on the rest.
func (t *Trainer) Train(reviews []Review) (*Model, TrainingMetrics, error) {
	startTime := time.Now()
	log := t.config.Logger

	examples, err := t.prepare(reviews)
	if err != nil {
		return nil, TrainingMetrics{}, err
	}
	if len(examples) == 0 {
		return nil, TrainingMetrics{}, ErrNoTrainingData
	}

	rng := rand.New(rand.NewSource(t.config.Seed))
	rng.Shuffle(len(examples), func(i, j int) {
		examples[i], examples[j] = examples[j], examples[i]
	})

	trainData, validData := examples, []example(nil)
	if t.config.ValidationSplit > 0 && t.config.ValidationSplit < 1 {
		splitIdx := int(float64(len(examples)) * (1.0 - t.config.ValidationSplit))
		if splitIdx > 0 && splitIdx < len(examples) {
			trainData, validData = examples[:splitIdx], examples[splitIdx:]
		}
	}

	metrics := TrainingMetrics{
		Examples:       len(examples),
		TrainSize:      len(trainData),
		ValidationSize: len(validData),
		ClassCounts:    make(map[Sentiment]int),
	}
	for _, ex := range examples {
		metrics.ClassCounts[ex.label]++
	}

	docs := make([]string, len(trainData))
	labels := make([]Sentiment, len(trainData))
	for i, ex := range trainData {
		docs[i], labels[i] = ex.text, ex.label
	}

	vectorizer := NewVectorizer(t.config.MinDF)
	vectorizer.Fit(docs)
	metrics.Vocabulary = vectorizer.Len()
	if vectorizer.Len() == 0 {
		return nil, metrics, fmt.Errorf("%w: every training review normalized to nothing", ErrNoTrainingData)
	}
	log.Info("vocabulary built", slog.Int("terms", vectorizer.Len()), slog.Int("documents", len(docs)))

	X := make([]*mat.VecDense, len(docs))
	for i, doc := range docs {
		if X[i], err = vectorizer.Transform(doc); err != nil {
			return nil, metrics, fmt.Errorf("vectorize training set: %w", err)
		}
	}

	classifier := new(NaiveBayes)
	if err := classifier.Fit(X, labels, t.config.Alpha); err != nil {
		return nil, metrics, fmt.Errorf("fit classifier: %w", err)
	}

	model := NewModel(t.config.Name, vectorizer, classifier)
	if len(validData) > 0 {
		metrics.Validation, err = evaluate(model, validData)
		if err != nil {
			return nil, metrics, err
		}
		log.Info("validation complete",
			slog.Float64("accuracy", metrics.Validation.Accuracy),
			slog.Float64("macro_f1", metrics.Validation.MacroF1),
			slog.Int("examples", len(validData)))
	}

	metrics.TrainingTime = time.Since(startTime)
	return model, metrics, nil
}

// prepare normalizes every labeled review, logging progress.
func (t *Trainer) prepare(reviews []Review) ([]example, error) {
	log := t.config.Logger
	examples := make([]example, 0, len(reviews))

	for i, r := range reviews {
		if err := t.config.Context.Err(); err != nil {
			return nil, err
		}
		if i%2000 == 0 {
			log.Info("normalizing reviews", slog.Int("done", i), slog.Int("total", len(reviews)))
		}
		if r.Missing || !r.Labeled {
			continue
		}

		text, err := t.normalizer.NormalizeReview(r)
		if err != nil {
			return nil, fmt.Errorf("review %d: %w", r.Index, err)
		}
		examples = append(examples, example{text: text, label: r.Label})
	}
	return examples, nil
}

func evaluate(model *Model, data []example) (ValidationResult, error) {
	tp := make(map[Sentiment]int)
	predicted := make(map[Sentiment]int)
	actual := make(map[Sentiment]int)
	correct := 0

	for _, ex := range data {
		got, err := model.Predict(ex.text)
		if err != nil {
			return ValidationResult{}, fmt.Errorf("evaluate: %w", err)
		}
		predicted[got]++
		actual[ex.label]++
		if got == ex.label {
			tp[got]++
			correct++
		}
	}

	result := ValidationResult{
		Accuracy: float64(correct) / float64(len(data)),
		Classes:  make(map[Sentiment]ClassMetrics),
	}
	var f1Sum float64
	for _, class := range Sentiments {
		if actual[class] == 0 && predicted[class] == 0 {
			continue
		}
		var m ClassMetrics
		m.Support = actual[class]
		if predicted[class] > 0 {
			m.Precision = float64(tp[class]) / float64(predicted[class])
		}
		if actual[class] > 0 {
			m.Recall = float64(tp[class]) / float64(actual[class])
		}
		if m.Precision+m.Recall > 0 {
			m.F1Score = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		result.Classes[class] = m
		f1Sum += m.F1Score
	}
	if len(result.Classes) > 0 {
		result.MacroF1 = f1Sum / float64(len(result.Classes))
	}
	return result, nil
}
