package usecases

import "math/rand/v2"

var JournalPrompts = []string{
	"What was the highlight of your day?",
	"What are you grateful for today?",
	"What emotions are you feeling right now?",
	"What challenged you today?",
	"What's one thing you'd like to improve tomorrow?",
}

// RandomPrompt picks a journal prompt. A nil r uses the global source.
func RandomPrompt(r *rand.Rand) string {
	if r == nil {
		return JournalPrompts[rand.IntN(len(JournalPrompts))]
	}
	return JournalPrompts[r.IntN(len(JournalPrompts))]
}
