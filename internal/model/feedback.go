package model

import (
	"time"
)

type Feedback struct {
	ID        string    `db:"id" json:"id"`
	Message   string    `db:"message" json:"message"`
	UserAgent *string   `db:"user_agent" json:"userAgent"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
