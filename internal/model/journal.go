package model

import (
	"time"
)

const (
	MoodGreat      = "great"
	MoodGood       = "good"
	MoodOkay       = "okay"
	MoodStruggling = "struggling"
)

type JournalEntry struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Content   string    `db:"content" json:"content"`
	Mood      *string   `db:"mood" json:"mood"`
	Week      *int      `db:"week" json:"week"`
	Day       *int      `db:"day" json:"day"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
