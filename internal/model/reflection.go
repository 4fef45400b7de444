package model

import (
	"time"
)

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

type Reflection struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"userId"`
	SuggestionID string    `db:"suggestion_id" json:"suggestionId"`
	Reflection   string    `db:"reflection" json:"reflection"`
	AIResponse   *string   `db:"ai_response" json:"aiResponse"`
	Sentiment    *string   `db:"sentiment" json:"sentiment"`
	Completed    bool      `db:"completed" json:"completed"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
