package domain

import "strings"

// bengaliKeywords mark a request for Bengali comments.
var bengaliKeywords = []string{"bangla", "bengali", "বাংলা", "gan", "gaan"}

// moodKeyword maps a keyword to a mood. The table is ordered: the first match wins.
type moodKeyword struct {
	keyword string
	mood    Mood
}

var moodKeywords = []moodKeyword{
	{"love", Mood_Romantic},
	{"romantic", Mood_Romantic},
	{"sad", Mood_Sad},
	{"emotional", Mood_Sad},
	{"energy", Mood_Energetic},
	{"gym", Mood_Energetic},
	{"devotional", Mood_Devotional},
	{"admire", Mood_Admiring},
}

// DefaultMood is used when no mood keyword matches.
const DefaultMood = Mood_Romantic

// DetectLanguage returns Language_Bengali when the text contains a Bengali marker.
func DetectLanguage(text string) Language {
	lower := strings.ToLower(text)
	for _, kw := range bengaliKeywords {
		if strings.Contains(lower, kw) {
			return Language_Bengali
		}
	}
	return Language_English
}

// DetectMood returns the mood of the first keyword found in text, or DefaultMood.
func DetectMood(text string) Mood {
	lower := strings.ToLower(text)
	for _, mk := range moodKeywords {
		if strings.Contains(lower, mk.keyword) {
			return mk.mood
		}
	}
	return DefaultMood
}

// ClassifyQuery derives the target language and mood from free text.
func ClassifyQuery(text string) (Language, Mood) {
	return DetectLanguage(text), DetectMood(text)
}

// ResolveTarget returns the language and mood for a request. Explicit values
// take precedence; classification only fills the empty ones.
func ResolveTarget(text string, mood Mood, language Language) (Language, Mood) {
	if language != "" {
		language = NewLanguage(string(language))
	} else {
		language = DetectLanguage(text)
	}
	if mood == "" {
		mood = DetectMood(text)
	}
	return language, mood
}
