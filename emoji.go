package moodreview

// An Emoji is the face shown next to a classified review.
type Emoji struct {
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
	Asset string `json:"asset"` // Image path relative to the assets directory.
}

var (
	angryEmoji   = Emoji{Name: "angry", Glyph: "\U0001F620", Asset: "angry.png"}
	neutralEmoji = Emoji{Name: "neutral", Glyph: "\U0001F610", Asset: "neutral.png"}
	happyEmoji   = Emoji{Name: "happy", Glyph: "\U0001F600", Asset: "happy.png"}
)

// EmojiFor returns the emoji for s. Anything outside the three classes gets
// the neutral face.
func EmojiFor(s Sentiment) Emoji {
	switch s {
	case Negative:
		return angryEmoji
	case Positive:
		return happyEmoji
	default:
		return neutralEmoji
	}
}
