package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tsawler/moodreview"
)

type nounTagger struct{}

func (nounTagger) Tag(tokens []string) ([]string, error) {
	tags := make([]string, len(tokens))
	for i := range tags {
		tags[i] = "NN"
	}
	return tags, nil
}

type identityLemmatizer struct{}

func (identityLemmatizer) Lemmatize(word string, _ moodreview.POS) (string, error) {
	return word, nil
}

// lengthPredictor calls short reviews negative and long ones positive.
type lengthPredictor struct{}

func (lengthPredictor) Predict(r moodreview.Review) (moodreview.Prediction, error) {
	if r.Missing {
		return moodreview.Prediction{Sentiment: moodreview.Neutral}, nil
	}
	if len(r.Text) < 10 {
		return moodreview.Prediction{Sentiment: moodreview.Negative, Normalized: r.Text}, nil
	}
	return moodreview.Prediction{Sentiment: moodreview.Positive, Normalized: r.Text}, nil
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	normalizer, err := moodreview.NewNormalizer(
		moodreview.UsingTagger(nounTagger{}),
		moodreview.UsingLemmatizer(identityLemmatizer{}),
		moodreview.UsingStopwords(moodreview.NewStopwordMap("the", "is")),
	)
	if err != nil {
		t.Fatal(err)
	}
	reviews := []moodreview.Review{
		{Index: 0, Text: "Awful."},
		{Index: 1, Text: "A really lovely purchase."},
		{Index: 2, Missing: true},
	}
	browser, err := moodreview.NewBrowser(reviews, lengthPredictor{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return newServer(browser, normalizer, lengthPredictor{})
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServerReviews(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		method    string
		path      string
		index     int
		label     string
		glyph     string
		sentences int
	}{
		{"GET", "/api/review", 0, "negative", "😠", 1},
		{"POST", "/api/review/next", 1, "positive", "😀", 1},
		{"POST", "/api/review/next", 2, "neutral", "😐", 0},
		{"POST", "/api/review/next", 0, "negative", "😠", 1},
		{"GET", "/api/review/-2", 1, "positive", "😀", 1},
		{"GET", "/api/review", 1, "positive", "😀", 1},
	}

	for _, tt := range tests {
		rec := doRequest(t, h, tt.method, tt.path, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s %s status = %d, body %s", tt.method, tt.path, rec.Code, rec.Body)
		}
		var fb feedbackJSON
		if err := json.NewDecoder(rec.Body).Decode(&fb); err != nil {
			t.Fatal(err)
		}
		if fb.Index != tt.index || fb.Label != tt.label || fb.Emoji.Glyph != tt.glyph || fb.Total != 3 {
			t.Errorf("%s %s = %+v", tt.method, tt.path, fb)
		}
		if len(fb.Sentences) != tt.sentences {
			t.Errorf("%s %s sentences = %q", tt.method, tt.path, fb.Sentences)
		}
	}
}

func TestServerErrors(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{"GET", "/api/review/abc", "", http.StatusBadRequest},
		{"POST", "/api/normalize", "not json", http.StatusBadRequest},
		{"POST", "/api/predict", "", http.StatusBadRequest},
		{"GET", "/nope", "", http.StatusNotFound},
		{"DELETE", "/api/review", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		rec := doRequest(t, h, tt.method, tt.path, tt.body)
		if rec.Code != tt.status {
			t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, rec.Code, tt.status)
		}
	}
}

func TestServerNormalize(t *testing.T) {
	h := newTestServer(t)
	rec := doRequest(t, h, "POST", "/api/normalize", `{"text":"The gift is Great! #yay @shop"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var resp normalizeResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Normalized != "gift great yay" {
		t.Errorf("Normalized = %q, want %q", resp.Normalized, "gift great yay")
	}
	if len(resp.Tokens) != 5 || !resp.Tokens[0].Stop || resp.Tokens[1].POS != "noun" {
		t.Errorf("Tokens = %+v", resp.Tokens)
	}
}

func TestServerPredict(t *testing.T) {
	h := newTestServer(t)
	rec := doRequest(t, h, "POST", "/api/predict", `{"text":"Exactly what I wanted"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var resp predictResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Label != "positive" || resp.Sentiment != 1 || resp.Emoji.Name != "happy" {
		t.Errorf("predict = %+v", resp)
	}
}

func TestServerPage(t *testing.T) {
	h := newTestServer(t)
	rec := doRequest(t, h, "GET", "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "Next Review") {
		t.Error("page should carry the Next Review button")
	}
}

func TestServerCORS(t *testing.T) {
	h := newTestServer(t)
	req := httptest.NewRequest("GET", "/api/review", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
