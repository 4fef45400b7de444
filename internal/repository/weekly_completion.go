package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/hermitcove/hermitcove/internal/model"
)

var (
	ErrCompletionNotFound  = errors.New("weekly completion not found")
	ErrDuplicateCompletion = errors.New("weekly completion already recorded")
)

type WeeklyCompletionRepository interface {
	Create(completion *model.WeeklyCompletion) error
	ByUserWeek(userID string, week int) (*model.WeeklyCompletion, error)
	Count() (int, error)
}

type weeklyCompletionRepository struct {
	db *sqlx.DB
}

func NewWeeklyCompletionRepository(db *sqlx.DB) WeeklyCompletionRepository {
	return &weeklyCompletionRepository{db: db}
}

func (r *weeklyCompletionRepository) Create(completion *model.WeeklyCompletion) error {
	query := `INSERT INTO weekly_completions (id, user_id, week, reflection, completed_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query,
		completion.ID,
		completion.UserID,
		completion.Week,
		completion.Reflection,
		completion.CompletedAt,
	)
	if err != nil {
		// Unique constraint violation (both SQLite and PostgreSQL wording)
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrDuplicateCompletion
		}
		return err
	}

	return nil
}

func (r *weeklyCompletionRepository) ByUserWeek(userID string, week int) (*model.WeeklyCompletion, error) {
	completion := &model.WeeklyCompletion{}
	query := `SELECT * FROM weekly_completions WHERE user_id = $1 AND week = $2`

	err := r.db.Get(completion, query, userID, week)
	if err == sql.ErrNoRows {
		return nil, ErrCompletionNotFound
	}

	return completion, err
}

func (r *weeklyCompletionRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM weekly_completions`).Scan(&count)
	return count, err
}
