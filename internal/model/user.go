package model

import (
	"time"
)

type User struct {
	ID                   string    `db:"id" json:"id"`
	Name                 string    `db:"name" json:"name"`
	CurrentWeek          int       `db:"current_week" json:"currentWeek"`
	CurrentSuggestion    int       `db:"current_suggestion" json:"currentSuggestion"`
	CompletedSuggestions int       `db:"completed_suggestions" json:"completedSuggestions"`
	CreatedAt            time.Time `db:"created_at" json:"createdAt"`
	LastActiveAt         time.Time `db:"last_active_at" json:"lastActiveAt"`
}
