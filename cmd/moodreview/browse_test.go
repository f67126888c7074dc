package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tsawler/moodreview"
)

func TestBrowse(t *testing.T) {
	reviews := []moodreview.Review{
		{Index: 0, Text: "Awful."},
		{Index: 1, Text: "A really lovely purchase."},
		{Index: 2, Missing: true},
	}
	browser, err := moodreview.NewBrowser(reviews, lengthPredictor{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		input string
		shown []string
	}{
		{"quit", "q\n", []string{"review 1 of 3"}},
		{"wrap around", "\n\n\nQ\n", []string{"review 1 of 3", "review 2 of 3", "(no review text)", "review 1 of 3"}},
		{"end of input", "\n", []string{"review 1 of 3", "review 2 of 3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := browser.Seek(0); err != nil {
				t.Fatal(err)
			}
			var out bytes.Buffer
			if err := browse(browser, strings.NewReader(tt.input), &out); err != nil {
				t.Fatalf("browse: %v", err)
			}
			got := out.String()
			pos := 0
			for _, want := range tt.shown {
				i := strings.Index(got[pos:], want)
				if i < 0 {
					t.Fatalf("output missing %q after offset %d:\n%s", want, pos, got)
				}
				pos += i + len(want)
			}
		})
	}
}

func TestPrintFeedback(t *testing.T) {
	var out bytes.Buffer
	printFeedback(&out, moodreview.Feedback{
		Index:     4,
		Sentences: []string{"Great.", "Really."},
		Sentiment: moodreview.Positive,
		Emoji:     moodreview.EmojiFor(moodreview.Positive),
	}, 10)

	got := out.String()
	for _, want := range []string{"😀", "positive", "review 5 of 10", "  Great.\n", "  Really.\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}
