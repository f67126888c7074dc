package moodreview

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/subosito/gotenv"
)

// Classifier kinds accepted by Config.Classifier.
const (
	ClassifierModel = "model"
	ClassifierVader = "vader"
)

// Stopword lists accepted by Config.Stopwords.
const (
	StopwordsEnglish  = "english"
	StopwordsExtended = "extended"
)

// Config holds the settings shared by the command-line tools.
type Config struct {
	DataPath    string // MOODREVIEW_DATA
	ModelDir    string // MOODREVIEW_MODEL_DIR
	Encoding    string // MOODREVIEW_ENCODING
	TextColumn  string // MOODREVIEW_TEXT_COLUMN
	LabelColumn string // MOODREVIEW_LABEL_COLUMN
	Classifier  string // MOODREVIEW_CLASSIFIER: "model" or "vader"
	Stopwords   string // MOODREVIEW_STOPWORDS: "english" or "extended"
	Addr        string // MOODREVIEW_ADDR
	LogLevel    string // MOODREVIEW_LOG_LEVEL
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		DataPath:    "data/customer_reviews.csv",
		ModelDir:    "model",
		Encoding:    "ISO8859-1",
		TextColumn:  ReviewColumn,
		LabelColumn: "sentiment",
		Classifier:  ClassifierModel,
		Stopwords:   StopwordsEnglish,
		Addr:        ":8080",
		LogLevel:    "info",
	}
}

// LoadConfig reads envFile, if it exists, into the process environment and
// then overlays MOODREVIEW_* variables on DefaultConfig.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := gotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("load %s: %w", envFile, err)
			}
			slog.Debug("no env file found, using OS environment", slog.String("file", envFile))
		}
	}

	cfg := DefaultConfig()
	for key, field := range map[string]*string{
		"MOODREVIEW_DATA":         &cfg.DataPath,
		"MOODREVIEW_MODEL_DIR":    &cfg.ModelDir,
		"MOODREVIEW_ENCODING":     &cfg.Encoding,
		"MOODREVIEW_TEXT_COLUMN":  &cfg.TextColumn,
		"MOODREVIEW_LABEL_COLUMN": &cfg.LabelColumn,
		"MOODREVIEW_CLASSIFIER":   &cfg.Classifier,
		"MOODREVIEW_STOPWORDS":    &cfg.Stopwords,
		"MOODREVIEW_ADDR":         &cfg.Addr,
		"MOODREVIEW_LOG_LEVEL":    &cfg.LogLevel,
	} {
		if v, ok := os.LookupEnv(key); ok {
			*field = strings.TrimSpace(v)
		}
	}

	switch cfg.Classifier {
	case ClassifierModel, ClassifierVader:
	default:
		return Config{}, fmt.Errorf("unknown classifier %q", cfg.Classifier)
	}
	switch cfg.Stopwords {
	case StopwordsEnglish, StopwordsExtended:
	default:
		return Config{}, fmt.Errorf("unknown stopword list %q", cfg.Stopwords)
	}
	return cfg, nil
}

// DatasetOptions returns the dataset settings of cfg.
func (c Config) DatasetOptions() DatasetOptions {
	return DatasetOptions{
		Encoding:    c.Encoding,
		TextColumn:  c.TextColumn,
		LabelColumn: c.LabelColumn,
	}
}

// NormalizerOptions returns the Normalizer settings of cfg.
func (c Config) NormalizerOptions() []NormalizerOpt {
	if c.Stopwords == StopwordsExtended {
		return []NormalizerOpt{UsingStopwords(NewExtendedStopwords("en"))}
	}
	return nil
}

// Level parses LogLevel, defaulting to info.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
