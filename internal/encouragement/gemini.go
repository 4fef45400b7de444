package encouragement

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/hermitcove/hermitcove/internal/model"
)

const defaultModel = "gemini-2.5-flash"

// GeminiGenerator implements Generator using Google's Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if modelName == "" {
		modelName = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		model:  modelName,
	}, nil
}

func (g *GeminiGenerator) ForReflection(ctx context.Context, reflection, exerciseDescription string) (Encouragement, error) {
	prompt := fmt.Sprintf(`You are a supportive AI therapist helping someone overcome social anxiety. They just completed a social anxiety challenge and shared their reflection.

Challenge: %q
User Reflection: %q

Analyze their reflection and provide:
1. An encouraging response (2-3 sentences, warm and supportive)
2. Sentiment analysis of their reflection (positive, negative, or neutral)
3. How much encouragement they need (gentle, moderate, or strong)

Use marine-themed emojis (🌊, 🐚, 🦀, ⭐) and maintain a gentle, ocean-inspired tone.
Be specific about their progress and validate their feelings, whether positive or challenging.

Respond in JSON format: {
  "message": "encouraging response here",
  "sentiment": "positive/negative/neutral",
  "encouragementLevel": "gentle/moderate/strong"
}`, exerciseDescription, reflection)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.7),
		MaxOutputTokens:  300,
	})
	if err != nil {
		return Encouragement{}, fmt.Errorf("gemini generate failed: %w", err)
	}

	return parseEncouragement(result.Text())
}

func (g *GeminiGenerator) ForJournal(ctx context.Context, content, mood string) (string, error) {
	prompt := fmt.Sprintf(`You are a supportive AI companion for someone on a social anxiety recovery journey. They just wrote a journal entry.

Journal Entry: %q
Mood: %s

Provide a brief (1-2 sentences), encouraging response that:
- Acknowledges their feelings and experiences
- Offers gentle support and validation
- Uses marine-themed language and emojis (🌊, 🐚, 🦀, ⭐)
- Matches their emotional state appropriately

Keep it warm, authentic, and supportive.`, content, mood)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.8),
		MaxOutputTokens: 150,
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	message := strings.TrimSpace(result.Text())
	if message == "" {
		return "", fmt.Errorf("gemini returned empty response")
	}

	return message, nil
}

// parseEncouragement validates the model output against the expected schema.
// Free-form output is never trusted: a missing message, an unknown sentiment,
// or an unknown level all fail the parse so the caller falls back.
func parseEncouragement(raw string) (Encouragement, error) {
	var e Encouragement
	err := json.Unmarshal([]byte(raw), &e)
	if err != nil {
		return Encouragement{}, fmt.Errorf("malformed encouragement response: %w", err)
	}

	e.Message = strings.TrimSpace(e.Message)
	if e.Message == "" {
		return Encouragement{}, fmt.Errorf("encouragement response missing message")
	}

	switch e.Sentiment {
	case model.SentimentPositive, model.SentimentNegative, model.SentimentNeutral:
	default:
		return Encouragement{}, fmt.Errorf("unknown sentiment %q", e.Sentiment)
	}

	switch e.Level {
	case LevelGentle, LevelModerate, LevelStrong:
	default:
		return Encouragement{}, fmt.Errorf("unknown encouragement level %q", e.Level)
	}

	return e, nil
}
