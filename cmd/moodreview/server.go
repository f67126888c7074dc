package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/cors"

	"github.com/tsawler/moodreview"
)

// ---- JSON response types ------------------------------------------------

type feedbackJSON struct {
	Index      int              `json:"index"`
	Total      int              `json:"total"`
	Text       string           `json:"text"`
	Sentences  []string         `json:"sentences"`
	Normalized string           `json:"normalized"`
	Sentiment  int              `json:"sentiment"`
	Label      string           `json:"label"`
	Emoji      moodreview.Emoji `json:"emoji"`
}

type normalizeResponse struct {
	Text       string      `json:"text"`
	Normalized string      `json:"normalized"`
	Tokens     []tokenJSON `json:"tokens"`
}

type tokenJSON struct {
	Text  string `json:"text"`
	Tag   string `json:"tag"`
	POS   string `json:"pos"`
	Lemma string `json:"lemma,omitempty"`
	Stop  bool   `json:"stop,omitempty"`
}

type predictResponse struct {
	Normalized string           `json:"normalized"`
	Sentiment  int              `json:"sentiment"`
	Label      string           `json:"label"`
	Emoji      moodreview.Emoji `json:"emoji"`
}

type textRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toFeedbackJSON(fb moodreview.Feedback, total int) feedbackJSON {
	sentences := fb.Sentences
	if sentences == nil {
		sentences = []string{}
	}
	return feedbackJSON{
		Index:      fb.Index,
		Total:      total,
		Text:       fb.Text,
		Sentences:  sentences,
		Normalized: fb.Normalized,
		Sentiment:  int(fb.Sentiment),
		Label:      fb.Sentiment.String(),
		Emoji:      fb.Emoji,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encode response", slog.String("error", err.Error()))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var body textRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&body); err != nil {
		return "", false
	}
	return body.Text, true
}

// ---- handlers -----------------------------------------------------------

func handleFeedback(browser *moodreview.Browser, step func() (moodreview.Feedback, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fb, err := step()
		if err != nil {
			slog.Error("classify review", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, toFeedbackJSON(fb, browser.Len()))
	}
}

func handleSeek(browser *moodreview.Browser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := strconv.Atoi(r.PathValue("index"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "index must be an integer")
			return
		}
		handleFeedback(browser, func() (moodreview.Feedback, error) {
			return browser.Seek(index)
		})(w, r)
	}
}

func handleNormalize(normalizer *moodreview.Normalizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, ok := decodeText(w, r)
		if !ok {
			writeError(w, http.StatusBadRequest, "body must be JSON with a 'text' field")
			return
		}

		tokens, err := normalizer.Analyze(text)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp := normalizeResponse{Text: text, Tokens: make([]tokenJSON, 0, len(tokens))}
		lemmas := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			resp.Tokens = append(resp.Tokens, tokenJSON{
				Text:  tok.Text,
				Tag:   tok.Tag,
				POS:   tok.POS.String(),
				Lemma: tok.Lemma,
				Stop:  tok.Stop,
			})
			if !tok.Stop {
				lemmas = append(lemmas, tok.Lemma)
			}
		}
		resp.Normalized = strings.Join(lemmas, " ")
		writeJSON(w, http.StatusOK, resp)
	}
}

func handlePredict(predictor moodreview.Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, ok := decodeText(w, r)
		if !ok {
			writeError(w, http.StatusBadRequest, "body must be JSON with a 'text' field")
			return
		}

		p, err := predictor.Predict(moodreview.NewReview(text))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, predictResponse{
			Normalized: p.Normalized,
			Sentiment:  int(p.Sentiment),
			Label:      p.Sentiment.String(),
			Emoji:      moodreview.EmojiFor(p.Sentiment),
		})
	}
}

func handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

func newServer(browser *moodreview.Browser, normalizer *moodreview.Normalizer, predictor moodreview.Predictor) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", handlePage)
	mux.HandleFunc("GET /api/review", handleFeedback(browser, browser.Current))
	mux.HandleFunc("POST /api/review/next", handleFeedback(browser, browser.Next))
	mux.HandleFunc("GET /api/review/{index}", handleSeek(browser))
	mux.HandleFunc("POST /api/normalize", handleNormalize(normalizer))
	mux.HandleFunc("POST /api/predict", handlePredict(predictor))

	return cors.Default().Handler(mux)
}

// ---- main ---------------------------------------------------------------

func runServe(cfg moodreview.Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	dataPath := fs.String("data", cfg.DataPath, "path to the review CSV")
	modelDir := fs.String("model", cfg.ModelDir, "directory holding a trained model")
	addr := fs.String("addr", cfg.Addr, "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	browser, normalizer, predictor, err := newBrowser(cfg, *dataPath, *modelDir)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           newServer(browser, normalizer, predictor),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("listening", slog.String("addr", *addr), slog.Int("reviews", browser.Len()))
	return srv.ListenAndServe()
}
