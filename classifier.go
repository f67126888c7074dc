package moodreview

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NaiveBayes is a multinomial naive Bayes classifier over TF-IDF vectors.
type NaiveBayes struct {
	Classes  []Sentiment
	LogPrior []float64
	LogProb  *mat.Dense // len(Classes) x features
}

// Fit estimates class priors and per-class feature log probabilities with
// additive smoothing alpha.
func (nb *NaiveBayes) Fit(X []*mat.VecDense, y []Sentiment, alpha float64) error {
	if len(X) == 0 {
		return ErrNoTrainingData
	}
	if len(X) != len(y) {
		return fmt.Errorf("%w: %d vectors, %d labels", ErrDimension, len(X), len(y))
	}
	if alpha <= 0 {
		alpha = 1
	}

	features := X[0].Len()
	if features == 0 {
		return fmt.Errorf("%w: empty vocabulary", ErrNoTrainingData)
	}
	classIdx := make(map[Sentiment]int)
	nb.Classes = nb.Classes[:0]
	for _, s := range Sentiments {
		for _, label := range y {
			if label == s {
				classIdx[s] = len(nb.Classes)
				nb.Classes = append(nb.Classes, s)
				break
			}
		}
	}
	for _, label := range y {
		if _, ok := classIdx[label]; !ok {
			return fmt.Errorf("%w: %d", ErrInvalidSentiment, int(label))
		}
	}

	counts := mat.NewDense(len(nb.Classes), features, nil)
	docs := make([]float64, len(nb.Classes))
	for i, x := range X {
		if x.Len() != features {
			return fmt.Errorf("%w: vector %d has %d features, want %d", ErrDimension, i, x.Len(), features)
		}
		c := classIdx[y[i]]
		row := counts.RawRowView(c)
		for j := range row {
			row[j] += x.AtVec(j)
		}
		docs[c]++
	}

	nb.LogPrior = make([]float64, len(nb.Classes))
	total := float64(len(X))
	for c := range nb.Classes {
		nb.LogPrior[c] = math.Log(docs[c] / total)

		row := counts.RawRowView(c)
		denom := math.Log(floats.Sum(row) + alpha*float64(features))
		for j := range row {
			row[j] = math.Log(row[j]+alpha) - denom
		}
	}
	nb.LogProb = counts
	return nil
}

// LogScores returns the unnormalized log posterior of each class.
func (nb *NaiveBayes) LogScores(x *mat.VecDense) ([]float64, error) {
	if nb.LogProb == nil {
		return nil, ErrModelNotFitted
	}
	_, features := nb.LogProb.Dims()
	if x.Len() != features {
		return nil, fmt.Errorf("%w: got %d features, want %d", ErrDimension, x.Len(), features)
	}

	scores := mat.NewVecDense(len(nb.Classes), nil)
	scores.MulVec(nb.LogProb, x)
	out := make([]float64, len(nb.Classes))
	for c := range out {
		out[c] = scores.AtVec(c) + nb.LogPrior[c]
	}
	return out, nil
}

// Predict returns the most probable class. Ties go to the earlier class.
func (nb *NaiveBayes) Predict(x *mat.VecDense) (Sentiment, error) {
	scores, err := nb.LogScores(x)
	if err != nil {
		return Neutral, err
	}
	best := 0
	for c := 1; c < len(scores); c++ {
		if scores[c] > scores[best] {
			best = c
		}
	}
	return nb.Classes[best], nil
}
