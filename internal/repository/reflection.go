package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/hermitcove/hermitcove/internal/model"
)

var (
	ErrReflectionNotFound = errors.New("reflection not found")
)

type ReflectionRepository interface {
	Upsert(reflection *model.Reflection) error
	ByUserSuggestion(userID, suggestionID string) (*model.Reflection, error)
	ByUser(userID string) ([]*model.Reflection, error)
	SetEnrichment(id, aiResponse, sentiment string) error
	SetCompleted(id string) error
	Count() (int, error)
	CountCompleted() (int, error)
}

type reflectionRepository struct {
	db *sqlx.DB
}

func NewReflectionRepository(db *sqlx.DB) ReflectionRepository {
	return &reflectionRepository{db: db}
}

// Upsert keeps one row per (user, suggestion). Resubmission replaces the text
// and clears the enrichment fields; the completed flag survives so finishing
// an exercise is not undone by editing its reflection.
func (r *reflectionRepository) Upsert(reflection *model.Reflection) error {
	query := `INSERT INTO user_reflections (id, user_id, suggestion_id, reflection, ai_response, sentiment, completed, created_at)
	          VALUES ($1, $2, $3, $4, NULL, NULL, $5, $6)
	          ON CONFLICT (user_id, suggestion_id)
	          DO UPDATE SET reflection = excluded.reflection, ai_response = NULL, sentiment = NULL, created_at = excluded.created_at`

	_, err := r.db.Exec(query,
		reflection.ID,
		reflection.UserID,
		reflection.SuggestionID,
		reflection.Reflection,
		reflection.Completed,
		reflection.CreatedAt,
	)
	if err != nil {
		return err
	}

	// On conflict the stored row keeps its original id and completed flag;
	// re-read so the caller sees what is actually persisted.
	stored, err := r.ByUserSuggestion(reflection.UserID, reflection.SuggestionID)
	if err != nil {
		return err
	}
	*reflection = *stored

	return nil
}

func (r *reflectionRepository) ByUserSuggestion(userID, suggestionID string) (*model.Reflection, error) {
	reflection := &model.Reflection{}
	query := `SELECT * FROM user_reflections WHERE user_id = $1 AND suggestion_id = $2`

	err := r.db.Get(reflection, query, userID, suggestionID)
	if err == sql.ErrNoRows {
		return nil, ErrReflectionNotFound
	}

	return reflection, err
}

func (r *reflectionRepository) ByUser(userID string) ([]*model.Reflection, error) {
	var reflections []*model.Reflection
	query := `SELECT * FROM user_reflections WHERE user_id = $1 ORDER BY created_at DESC, id ASC`

	err := r.db.Select(&reflections, query, userID)
	if err != nil {
		return nil, err
	}

	return reflections, nil
}

func (r *reflectionRepository) SetEnrichment(id, aiResponse, sentiment string) error {
	query := `UPDATE user_reflections SET ai_response = $1, sentiment = $2 WHERE id = $3`

	result, err := r.db.Exec(query, aiResponse, sentiment, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrReflectionNotFound
	}

	return nil
}

func (r *reflectionRepository) SetCompleted(id string) error {
	query := `UPDATE user_reflections SET completed = true WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrReflectionNotFound
	}

	return nil
}

func (r *reflectionRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM user_reflections`).Scan(&count)
	return count, err
}

func (r *reflectionRepository) CountCompleted() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM user_reflections WHERE completed = true`).Scan(&count)
	return count, err
}
