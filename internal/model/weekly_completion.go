package model

import (
	"time"
)

type WeeklyCompletion struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"userId"`
	Week        int       `db:"week" json:"week"`
	Reflection  *string   `db:"reflection" json:"reflection"`
	CompletedAt time.Time `db:"completed_at" json:"completedAt"`
}
