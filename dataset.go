package moodreview

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ReviewColumn is the column holding review text once headers are
// canonicalized.
const ReviewColumn = "Detailed Review"

// columnAliases renames raw dataset headers to their canonical names.
var columnAliases = map[string]string{
	"detailed_review": ReviewColumn,
}

// DatasetOptions controls how LoadReviews reads a CSV file.
type DatasetOptions struct {
	Encoding    string       // "ISO8859-1" (default) or "UTF-8"
	TextColumn  string       // defaults to ReviewColumn
	LabelColumn string       // optional sentiment column
	Logger      *slog.Logger // defaults to slog.Default()
}

// DefaultDatasetOptions returns the options the customer review dataset
// needs.
func DefaultDatasetOptions() DatasetOptions {
	return DatasetOptions{
		Encoding:   "ISO8859-1",
		TextColumn: ReviewColumn,
	}
}

// LoadReviews reads every record of the CSV file at path.
func LoadReviews(path string, opts DatasetOptions) ([]Review, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reviews, err := ReadReviews(f, opts)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return reviews, nil
}

// ReadReviews reads reviews from CSV data. The first record must be a
// header. Empty text cells produce Missing reviews.
func ReadReviews(r io.Reader, opts DatasetOptions) ([]Review, error) {
	if opts.TextColumn == "" {
		opts.TextColumn = ReviewColumn
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	enc, err := datasetEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(enc.NewDecoder().Reader(r))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", ErrColumnNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	textIdx, labelIdx := -1, -1
	for i, name := range header {
		name = canonicalColumn(name)
		switch {
		case name == opts.TextColumn:
			textIdx = i
		case opts.LabelColumn != "" && name == opts.LabelColumn:
			labelIdx = i
		}
	}
	if textIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, opts.TextColumn)
	}
	if opts.LabelColumn != "" && labelIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, opts.LabelColumn)
	}

	var reviews []Review
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset line %d: %w", line, err)
		}

		review := Review{Index: len(reviews)}
		if textIdx < len(record) && strings.TrimSpace(record[textIdx]) != "" {
			review.Text = record[textIdx]
		} else {
			review.Missing = true
		}

		if labelIdx >= 0 && labelIdx < len(record) {
			label, err := ParseSentiment(record[labelIdx])
			if err != nil {
				logger.Debug("unlabeled review", slog.Int("line", line), slog.String("error", err.Error()))
			} else {
				review.Label, review.Labeled = label, true
			}
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

func canonicalColumn(name string) string {
	name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	if alias, ok := columnAliases[name]; ok {
		return alias
	}
	return name
}

func datasetEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToUpper(strings.ReplaceAll(name, "_", "-")) {
	case "", "ISO8859-1", "ISO-8859-1", "LATIN1", "LATIN-1":
		return charmap.ISO8859_1, nil
	case "UTF-8", "UTF8":
		return unicode.UTF8, nil
	default:
		return nil, fmt.Errorf("unsupported dataset encoding %q", name)
	}
}
