package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/hermitcove/hermitcove/internal/model"
)

var (
	ErrSuggestionNotFound = errors.New("suggestion not found")
)

type SuggestionRepository interface {
	SeedAll(suggestions []*model.Suggestion) error
	ByID(id string) (*model.Suggestion, error)
	ByWeekDay(week, day int) (*model.Suggestion, error)
	All() ([]*model.Suggestion, error)
	Count() (int, error)
}

type suggestionRepository struct {
	db *sqlx.DB
}

func NewSuggestionRepository(db *sqlx.DB) SuggestionRepository {
	return &suggestionRepository{db: db}
}

// SeedAll inserts the full curriculum in one transaction. Called once at
// startup when the table is empty.
func (r *suggestionRepository) SeedAll(suggestions []*model.Suggestion) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO suggestions (id, week, day, title, description, category)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	for _, s := range suggestions {
		_, err := tx.Exec(query, s.ID, s.Week, s.Day, s.Title, s.Description, s.Category)
		if err != nil {
			return fmt.Errorf("failed to seed suggestion (%d,%d): %w", s.Week, s.Day, err)
		}
	}

	return tx.Commit()
}

func (r *suggestionRepository) ByID(id string) (*model.Suggestion, error) {
	suggestion := &model.Suggestion{}
	query := `SELECT * FROM suggestions WHERE id = $1`

	err := r.db.Get(suggestion, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrSuggestionNotFound
	}

	return suggestion, err
}

func (r *suggestionRepository) ByWeekDay(week, day int) (*model.Suggestion, error) {
	suggestion := &model.Suggestion{}
	query := `SELECT * FROM suggestions WHERE week = $1 AND day = $2`

	err := r.db.Get(suggestion, query, week, day)
	if err == sql.ErrNoRows {
		return nil, ErrSuggestionNotFound
	}

	return suggestion, err
}

func (r *suggestionRepository) All() ([]*model.Suggestion, error) {
	var suggestions []*model.Suggestion
	query := `SELECT * FROM suggestions ORDER BY week ASC, day ASC`

	err := r.db.Select(&suggestions, query)
	if err != nil {
		return nil, err
	}

	return suggestions, nil
}

func (r *suggestionRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM suggestions`).Scan(&count)
	return count, err
}
