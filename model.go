package moodreview

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"
)

// A Model holds a fitted vectorizer and classifier pair.
type Model struct {
	Name string

	vectorizer *Vectorizer
	classifier *NaiveBayes
}

// NewModel wraps a fitted vectorizer and classifier.
func NewModel(name string, v *Vectorizer, nb *NaiveBayes) *Model {
	return &Model{Name: name, vectorizer: v, classifier: nb}
}

// Vectorizer returns the model's vectorizer.
func (m *Model) Vectorizer() *Vectorizer {
	return m.vectorizer
}

// Predict classifies already-normalized text.
func (m *Model) Predict(normalized string) (Sentiment, error) {
	if m.vectorizer == nil || m.classifier == nil {
		return Neutral, ErrModelNotFitted
	}
	x, err := m.vectorizer.Transform(normalized)
	if err != nil {
		return Neutral, err
	}
	return m.classifier.Predict(x)
}

// ModelFromDisk loads a Model from the user-provided location.
func ModelFromDisk(path string) (*Model, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("load model: %s is not a directory", path)
	}
	return ModelFromFS(filepath.Base(path), os.DirFS(path))
}

// ModelFromFS loads a Model stored at the root of filesys.
func ModelFromFS(name string, filesys fs.FS) (*Model, error) {
	var (
		vocab    map[string]int
		idf      []float64
		classes  []Sentiment
		priors   []float64
		weights  []float64
		features int
	)

	assets := []struct {
		path string
		into any
	}{
		{"Vectorizer/vocabulary.gob", &vocab},
		{"Vectorizer/idf.gob", &idf},
		{"Bayes/classes.gob", &classes},
		{"Bayes/priors.gob", &priors},
		{"Bayes/weights.gob", &weights},
	}
	for _, asset := range assets {
		if err := decodeAsset(filesys, asset.path, asset.into); err != nil {
			return nil, fmt.Errorf("load model %s: %w", name, err)
		}
	}

	features = len(idf)
	if len(vocab) != features || len(priors) != len(classes) || len(weights) != len(classes)*features || features == 0 {
		return nil, fmt.Errorf("load model %s: %w", name, ErrDimension)
	}

	return &Model{
		Name:       name,
		vectorizer: &Vectorizer{Vocabulary: vocab, IDF: idf},
		classifier: &NaiveBayes{
			Classes:  classes,
			LogPrior: priors,
			LogProb:  mat.NewDense(len(classes), features, weights),
		},
	}, nil
}

// Write saves a Model to the user-provided location.
func (m *Model) Write(path string) error {
	if m.vectorizer == nil || m.classifier == nil || m.classifier.LogProb == nil {
		return ErrModelNotFitted
	}

	rows, cols := m.classifier.LogProb.Dims()
	weights := make([]float64, 0, rows*cols)
	for r := 0; r < rows; r++ {
		weights = append(weights, m.classifier.LogProb.RawRowView(r)...)
	}

	assets := []struct {
		path string
		from any
	}{
		{"Vectorizer/vocabulary.gob", m.vectorizer.Vocabulary},
		{"Vectorizer/idf.gob", m.vectorizer.IDF},
		{"Bayes/classes.gob", m.classifier.Classes},
		{"Bayes/priors.gob", m.classifier.LogPrior},
		{"Bayes/weights.gob", weights},
	}
	for _, asset := range assets {
		if err := encodeAsset(filepath.Join(path, filepath.FromSlash(asset.path)), asset.from); err != nil {
			return fmt.Errorf("write model: %w", err)
		}
	}
	return nil
}

func decodeAsset(filesys fs.FS, name string, into any) error {
	file, err := filesys.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := gob.NewDecoder(file).Decode(into); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func encodeAsset(path string, from any) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()
	return gob.NewEncoder(file).Encode(from)
}
