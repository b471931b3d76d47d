package domain

import "strings"

// Language is the language a comment is written in. Values are lowercased.
type Language string

const (
	// Language_English is the default language.
	Language_English Language = "english"
	// Language_Bengali covers Bangla script and transliterated Bangla.
	Language_Bengali Language = "bengali"
)

// NewLanguage lowercases a raw language value.
func NewLanguage(raw string) Language {
	return Language(strings.ToLower(strings.TrimSpace(raw)))
}

// Mood is the emotional register of a comment, e.g. "Romantic" or "sad".
// Comparisons are case-insensitive.
type Mood string

const (
	Mood_Romantic   Mood = "Romantic"
	Mood_Sad        Mood = "Sad"
	Mood_Energetic  Mood = "Energetic"
	Mood_Devotional Mood = "Devotional"
	Mood_Admiring   Mood = "Admiring"
)

// Lower returns the lowercased mood value.
func (m Mood) Lower() string {
	return strings.ToLower(string(m))
}

// StyleAll is the style filter sentinel that disables style filtering.
const StyleAll = "all"

// CommentRecord is one entry of the comment corpus.
// IDs come from the source spreadsheet and are not guaranteed to be unique.
type CommentRecord struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Language   string `json:"language"`
	Mood       string `json:"mood"`
	Intensity  string `json:"intensity"`
	EmojiLevel string `json:"emoji_level"`
	Style      string `json:"style"`
}

// CommentVariant is a comment returned to callers, either retrieved or generated.
type CommentVariant struct {
	Comment string `json:"comment" validate:"required"`
	Mood    string `json:"mood" validate:"required"`
	Style   string `json:"style" validate:"required"`
}

// DefaultSearchStyle is used for retrieved comments whose record has no style.
const DefaultSearchStyle = "Smart Search"
