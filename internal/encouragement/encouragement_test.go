package encouragement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermitcove/hermitcove/internal/model"
)

func TestParseEncouragement(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "valid",
			raw:  `{"message": "Keep going! 🌊", "sentiment": "positive", "encouragementLevel": "gentle"}`,
		},
		{
			name:    "not json",
			raw:     `Keep going!`,
			wantErr: true,
		},
		{
			name:    "empty message",
			raw:     `{"message": "  ", "sentiment": "positive", "encouragementLevel": "gentle"}`,
			wantErr: true,
		},
		{
			name:    "unknown sentiment",
			raw:     `{"message": "hi", "sentiment": "ecstatic", "encouragementLevel": "gentle"}`,
			wantErr: true,
		},
		{
			name:    "unknown level",
			raw:     `{"message": "hi", "sentiment": "neutral", "encouragementLevel": "overwhelming"}`,
			wantErr: true,
		},
		{
			name:    "empty object",
			raw:     `{}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := parseEncouragement(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, e.Message)
		})
	}
}

func TestFallbackPools(t *testing.T) {
	require.GreaterOrEqual(t, len(reflectionFallbacks), 10)
	require.GreaterOrEqual(t, len(journalFallbacks), 10)

	for _, f := range reflectionFallbacks {
		assert.NotEmpty(t, f.Message)
		assert.Contains(t, []string{model.SentimentPositive, model.SentimentNegative, model.SentimentNeutral}, f.Sentiment)
		assert.Contains(t, []string{LevelGentle, LevelModerate, LevelStrong}, f.Level)
	}

	// Random picks always come from the pool
	for i := 0; i < 50; i++ {
		assert.Contains(t, reflectionFallbacks, FallbackForReflection())
		assert.Contains(t, journalFallbacks, FallbackForJournal())
	}
}
