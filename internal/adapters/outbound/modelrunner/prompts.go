package modelrunner

import (
	"embed"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-commentapp/internal/domain"
	"github.com/toon-format/toon-go"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/generate-comments.yml
var generationPrompt embed.FS

const defaultMoodPrompt = "Write an engaging comment."

var moodPrompts = map[string]string{
	"romantic":      "Write a romantic comment about how this song makes you feel in love.",
	"sad":           "Write an emotional comment about how this song captures your sadness.",
	"energetic":     "Write a high-energy comment about how this song pumps you up.",
	"devotional":    "Write a spiritual comment about how this song connects you to something divine.",
	"admiring":      "Write an admiring comment praising the artist's musical talent and this song.",
	"supportive":    "Write a supportive comment encouraging the artist and their music.",
	"nostalgic":     "Write a nostalgic comment about memories this song brings back.",
	"funny":         "Write a funny, lighthearted comment about your experience with this song.",
	"sarcastic":     "Write a sarcastic, witty comment about this song or music.",
	"angry":         "Write a passionate comment about how intensely this song hits you.",
	"happy":         "Write a joyful comment about how this song brightens your day.",
	"neutral":       "Write a thoughtful comment sharing your honest take on this song.",
	"comforting":    "Write a warm comment about how this song comforts and heals you.",
	"casual":        "Write a casual, friendly comment about vibing to this song.",
	"inspirational": "Write an inspiring comment about how this song motivates you.",
}

// promptExamples are the few-shot examples shown to the model, serialized as TOON.
type promptExamples struct {
	Examples []string `toon:"examples"`
}

var (
	englishExamples = promptExamples{Examples: []string{
		"I am playing this song on loop while cooking lunch. It makes the mundane work feel so enjoyable! Thank you for the company. 🍛🎧👩‍🍳",
		"Just discovered this masterpiece during my late night study session. My notes are a mess but my soul feels so refreshed right now! 📚✨🎶",
		"Woke up feeling low today but this completely turned my mood around. Sometimes music is the best therapy anyone could ask for! 🌅💛🎵",
	}}
	bengaliExamples = promptExamples{Examples: []string{
		"শুভ জন্মদিন! গান দিয়ে উদযাপন করার কী চমৎকার উপায়। আপনার আগামী বছরটিও সঙ্গীতময় হোক। 🎂🎉🎶",
		"রান্না করতে করতে এই গানটা লুপে চালাচ্ছি। একটু একঘেয়ে কাজও কত আনন্দময় হয়ে যায়! সঙ্গ দেওয়ার জন্য ধন্যবাদ। 🍛🎧👩‍🍳",
		"আজ মন খুব খারাপ ছিল, কিন্তু এই গানটা শুনে সব কিছু বদলে গেল। সত্যিই সঙ্গীত সেরা থেরাপি! 🌅💛🎵",
	}}
)

// moodPrompt returns the instruction for a mood, matched case-insensitively.
func moodPrompt(mood string) string {
	if p, ok := moodPrompts[strings.ToLower(strings.TrimSpace(mood))]; ok {
		return p
	}
	return defaultMoodPrompt
}

func isBengali(language string) bool {
	return domain.NewLanguage(language) == domain.Language_Bengali
}

func languagePrompt(language string) string {
	if isBengali(language) {
		return "Write in Bengali (Bangla script)."
	}
	return "Write in English."
}

// buildGenerationMessages renders the generation prompt for one batched request.
func buildGenerationMessages(req domain.GenerationRequest) ([]ChatMessage, error) {
	examples := englishExamples
	if isBengali(req.Language) {
		examples = bengaliExamples
	}
	examplesTOON, err := toon.MarshalString(examples, toon.WithLengthMarkers(true))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prompt examples: %w", err)
	}

	topic := ""
	if strings.TrimSpace(req.Context) != "" {
		topic = "\nTopic: " + req.Context
	}

	file, err := generationPrompt.Open("prompts/generate-comments.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open generation prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []ChatMessage{}
	err = yaml.NewDecoder(file).Decode(&messages)
	if err != nil {
		return nil, fmt.Errorf("failed to decode generation prompt: %w", err)
	}

	for i, msg := range messages {
		if msg.Role != "user" {
			continue
		}
		msg.Content = fmt.Sprintf(
			msg.Content,
			req.BatchSize,
			moodPrompt(req.Mood),
			languagePrompt(req.Language),
			topic,
			examplesTOON,
		)
		messages[i] = msg
	}
	return messages, nil
}
