package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/hermitcove/hermitcove/internal/model"
)

type FeedbackRepository interface {
	Create(feedback *model.Feedback) error
	All() ([]*model.Feedback, error)
	Count() (int, error)
}

type feedbackRepository struct {
	db *sqlx.DB
}

func NewFeedbackRepository(db *sqlx.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(feedback *model.Feedback) error {
	query := `INSERT INTO feedback (id, message, user_agent, created_at)
	          VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query,
		feedback.ID,
		feedback.Message,
		feedback.UserAgent,
		feedback.CreatedAt,
	)

	return err
}

func (r *feedbackRepository) All() ([]*model.Feedback, error) {
	var feedback []*model.Feedback
	query := `SELECT * FROM feedback ORDER BY created_at DESC, id ASC`

	err := r.db.Select(&feedback, query)
	if err != nil {
		return nil, err
	}

	return feedback, nil
}

func (r *feedbackRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM feedback`).Scan(&count)
	return count, err
}
