// Command moodreview classifies customer reviews and shows the result with
// an emoji.
//
// Usage:
//
//	moodreview normalize              < reviews.txt
//	moodreview train  [-data file] [-out dir]
//	moodreview browse [-data file] [-model dir]
//	moodreview serve  [-data file] [-model dir] [-addr :8080]
//
// Settings are read from MOODREVIEW_* variables, optionally loaded from
// the file named by MOODREVIEW_ENV_FILE (default ".env").
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tsawler/moodreview"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	envFile := os.Getenv("MOODREVIEW_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	cfg, err := moodreview.LoadConfig(envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	initLogger(os.Stderr, cfg.Level())

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "normalize":
		err = runNormalize(cfg, os.Stdin, os.Stdout)
	case "train":
		err = runTrain(cfg, args)
	case "browse":
		err = runBrowse(cfg, args, os.Stdin, os.Stdout)
	case "serve":
		err = runServe(cfg, args)
	case "help", "-h", "-help", "--help":
		usage()
		return
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		slog.Error("command failed", slog.String("command", cmd), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: moodreview <normalize|train|browse|serve> [flags]")
}

// runNormalize writes one normalized line per input line.
func runNormalize(cfg moodreview.Config, in io.Reader, out io.Writer) error {
	normalizer, err := moodreview.NewNormalizer(cfg.NormalizerOptions()...)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	defer w.Flush()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line, err := normalizer.Normalize(scanner.Text())
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func runTrain(cfg moodreview.Config, args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	dataPath := fs.String("data", cfg.DataPath, "path to the labeled review CSV")
	outDir := fs.String("out", cfg.ModelDir, "directory to write the model to")
	split := fs.Float64("validation", 0.2, "share of examples held out for validation")
	seed := fs.Int64("seed", 42, "shuffle seed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	reviews, err := moodreview.LoadReviews(*dataPath, cfg.DatasetOptions())
	if err != nil {
		return err
	}
	slog.Info("dataset loaded", slog.String("path", *dataPath), slog.Int("reviews", len(reviews)))

	normalizer, err := moodreview.NewNormalizer(cfg.NormalizerOptions()...)
	if err != nil {
		return err
	}

	config := moodreview.DefaultTrainingConfig()
	config.ValidationSplit = *split
	config.Seed = *seed
	model, metrics, err := moodreview.NewTrainer(normalizer, config).Train(reviews)
	if err != nil {
		return err
	}

	if err := model.Write(*outDir); err != nil {
		return err
	}
	slog.Info("model written",
		slog.String("dir", *outDir),
		slog.Int("examples", metrics.Examples),
		slog.Int("vocabulary", metrics.Vocabulary),
		slog.Float64("accuracy", metrics.Validation.Accuracy),
		slog.Duration("took", metrics.TrainingTime))
	return nil
}

// loadPredictor builds the classifier named by cfg.Classifier.
func loadPredictor(cfg moodreview.Config, normalizer *moodreview.Normalizer, modelDir string) (moodreview.Predictor, error) {
	if cfg.Classifier == moodreview.ClassifierVader {
		return moodreview.NewVaderClassifier(normalizer), nil
	}

	model, err := moodreview.ModelFromDisk(modelDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w (run \"moodreview train\" or set MOODREVIEW_CLASSIFIER=vader)", err)
	}
	if err != nil {
		return nil, err
	}
	slog.Info("model loaded", slog.String("dir", modelDir), slog.Int("vocabulary", model.Vectorizer().Len()))
	return moodreview.NewPipeline(normalizer, model), nil
}

// newBrowser loads the dataset and classifier shared by browse and serve.
func newBrowser(cfg moodreview.Config, dataPath, modelDir string) (*moodreview.Browser, *moodreview.Normalizer, moodreview.Predictor, error) {
	opts := cfg.DatasetOptions()
	opts.LabelColumn = ""
	reviews, err := moodreview.LoadReviews(dataPath, opts)
	if err != nil {
		return nil, nil, nil, err
	}

	normalizer, err := moodreview.NewNormalizer(cfg.NormalizerOptions()...)
	if err != nil {
		return nil, nil, nil, err
	}
	predictor, err := loadPredictor(cfg, normalizer, modelDir)
	if err != nil {
		return nil, nil, nil, err
	}
	splitter, err := moodreview.NewSentenceSplitter()
	if err != nil {
		return nil, nil, nil, err
	}

	browser, err := moodreview.NewBrowser(reviews, predictor, splitter)
	if err != nil {
		return nil, nil, nil, err
	}
	return browser, normalizer, predictor, nil
}
