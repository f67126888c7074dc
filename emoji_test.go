package moodreview

import "testing"

func TestEmojiFor(t *testing.T) {
	tests := []struct {
		sentiment Sentiment
		name      string
		glyph     string
	}{
		{Negative, "angry", "😠"},
		{Neutral, "neutral", "😐"},
		{Positive, "happy", "😀"},
		{Sentiment(9), "neutral", "😐"},
		{Sentiment(-3), "neutral", "😐"},
	}

	for _, tt := range tests {
		got := EmojiFor(tt.sentiment)
		if got.Name != tt.name || got.Glyph != tt.glyph {
			t.Errorf("EmojiFor(%d) = %+v, want %s %s", int(tt.sentiment), got, tt.name, tt.glyph)
		}
		if got.Asset != tt.name+".png" {
			t.Errorf("EmojiFor(%d).Asset = %q", int(tt.sentiment), got.Asset)
		}
	}
}
