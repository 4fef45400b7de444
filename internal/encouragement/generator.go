// Package encouragement produces short supportive messages for reflections and
// journal entries. The Gemini-backed generator is optional; callers must treat
// any error as a signal to fall back to the static pool, never as a failure of
// the surrounding operation.
package encouragement

import (
	"context"
)

const (
	LevelGentle   = "gentle"
	LevelModerate = "moderate"
	LevelStrong   = "strong"
)

type Encouragement struct {
	Message   string `json:"message"`
	Sentiment string `json:"sentiment"`
	Level     string `json:"encouragementLevel"`
}

type Generator interface {
	// ForReflection returns supportive text plus a sentiment read of the
	// user's reflection on one exercise.
	ForReflection(ctx context.Context, reflection, exerciseDescription string) (Encouragement, error)

	// ForJournal returns a one- or two-sentence response to a journal entry.
	ForJournal(ctx context.Context, content, mood string) (string, error)
}
