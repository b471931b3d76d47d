package domain

import "strings"

// emojisPerComment is how many emoji are appended to a retrieved comment.
const emojisPerComment = 2

var emojiPools = map[string][]string{
	Mood_Romantic.Lower():   {"❤️", "💖", "🥺", "✨", "🌸", "💞", "😘", "🥰"},
	Mood_Energetic.Lower():  {"🔥", "⚡", "🎶", "🚀", "💃", "🥳", "🎉", "🌟"},
	Mood_Sad.Lower():        {"🌙", "💔", "😔", "🌧️", "😢", "😞", "😥", "🍂"},
	Mood_Devotional.Lower(): {"🙏", "🌺", "🕊️", "✨", "😇", "🌿", "🧘"},
	Mood_Admiring.Lower():   {"👏", "🔥", "🙏", "✨", "🤩", "💯", "🙌"},
}

// EmojiPool returns the emoji candidates for a mood, or nil for unknown moods.
func EmojiPool(mood Mood) []string {
	return emojiPools[mood.Lower()]
}

// DecorateWithEmojis appends up to two distinct emoji from the mood's pool to text.
// Text is returned unchanged when the mood has no pool.
func DecorateWithEmojis(rnd RandomSource, text string, mood Mood) string {
	pool := EmojiPool(mood)
	if len(pool) == 0 {
		return text
	}
	chosen := SampleFrom(rnd, pool, emojisPerComment)
	return text + " " + strings.Join(chosen, " ")
}
