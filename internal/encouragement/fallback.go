package encouragement

import (
	"math/rand/v2"

	"github.com/hermitcove/hermitcove/internal/model"
)

// Pre-written pools used whenever the generator is unavailable or returns
// something unusable. Picked uniformly at random for variety.

var reflectionFallbacks = []Encouragement{
	{Message: "Thank you for sharing your experience. Remember, growth happens one wave at a time. You're braver than you know! 🌊🦀", Sentiment: model.SentimentNeutral, Level: LevelModerate},
	{Message: "Every small step you take creates ripples of positive change. Your courage is inspiring! 🐚✨", Sentiment: model.SentimentPositive, Level: LevelGentle},
	{Message: "Like a crab slowly emerging from its shell, you're discovering your own strength. Keep going! 🦀🌊", Sentiment: model.SentimentPositive, Level: LevelModerate},
	{Message: "The ocean doesn't rush its waves, and you don't need to rush your journey. You're exactly where you need to be. 🌊💙", Sentiment: model.SentimentNeutral, Level: LevelGentle},
	{Message: "Each challenge you face is like a shell being polished by the waves - you're becoming more beautiful with every experience. 🐚⭐", Sentiment: model.SentimentPositive, Level: LevelModerate},
	{Message: "Your reflection shows real insight and growth. The tide is turning in your favor! 🌊🦀", Sentiment: model.SentimentPositive, Level: LevelStrong},
	{Message: "Progress isn't always visible on the surface, just like the powerful currents beneath calm waters. Trust your journey. 🌊✨", Sentiment: model.SentimentNeutral, Level: LevelModerate},
	{Message: "You're building confidence like a coral reef - slowly but surely, creating something strong and beautiful. 🐚🌊", Sentiment: model.SentimentPositive, Level: LevelGentle},
	{Message: "Every experience, comfortable or challenging, adds to your treasure chest of wisdom. Well done! ⭐🦀", Sentiment: model.SentimentPositive, Level: LevelModerate},
	{Message: "Like the steady rhythm of waves on shore, your consistent effort is creating lasting change. Keep flowing forward! 🌊💙", Sentiment: model.SentimentPositive, Level: LevelStrong},
}

var journalFallbacks = []string{
	"Thank you for sharing your thoughts. Every reflection brings you closer to shore. 🐚✨",
	"Your words show deep self-awareness. Like shells on the beach, each thought has its own beauty. 🌊🐚",
	"Writing helps the waves of emotion find their natural rhythm. Keep expressing yourself! 💙⭐",
	"Your journal is a safe harbor for your thoughts. Thank you for being honest with yourself. 🦀🌊",
	"Each entry is like a message in a bottle - precious and meaningful. Your journey matters. 🐚💫",
	"The tides of feeling ebb and flow, and you're learning to navigate them beautifully. 🌊✨",
	"Your reflections are creating ripples of positive change in your life. Keep writing! 🦀💙",
	"Like a lighthouse guiding ships, your self-awareness lights the way forward. 🌊⭐",
	"Every word you write is a step on the path to understanding yourself better. Well done! 🐚🦀",
	"Your openness is like the ocean - vast, deep, and full of possibilities. 🌊💙",
}

// FallbackForReflection returns a random pre-written encouragement.
func FallbackForReflection() Encouragement {
	return reflectionFallbacks[rand.IntN(len(reflectionFallbacks))]
}

// FallbackForJournal returns a random pre-written journal response.
func FallbackForJournal() string {
	return journalFallbacks[rand.IntN(len(journalFallbacks))]
}
