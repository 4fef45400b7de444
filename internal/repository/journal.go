package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/hermitcove/hermitcove/internal/model"
)

type JournalRepository interface {
	Create(entry *model.JournalEntry) error
	ByUser(userID string) ([]*model.JournalEntry, error)
	Count() (int, error)
}

type journalRepository struct {
	db *sqlx.DB
}

func NewJournalRepository(db *sqlx.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) Create(entry *model.JournalEntry) error {
	query := `INSERT INTO journal_entries (id, user_id, content, mood, week, day, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		entry.ID,
		entry.UserID,
		entry.Content,
		entry.Mood,
		entry.Week,
		entry.Day,
		entry.CreatedAt,
	)

	return err
}

func (r *journalRepository) ByUser(userID string) ([]*model.JournalEntry, error) {
	var entries []*model.JournalEntry
	query := `SELECT * FROM journal_entries WHERE user_id = $1 ORDER BY created_at DESC, id ASC`

	err := r.db.Select(&entries, query, userID)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *journalRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM journal_entries`).Scan(&count)
	return count, err
}
