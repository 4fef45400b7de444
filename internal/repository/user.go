package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/hermitcove/hermitcove/internal/model"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

type UserRepository interface {
	Create(user *model.User) error
	ByID(id string) (*model.User, error)
	Update(user *model.User) error
	TouchLastActive(id string) error
	Count() (int, error)
	CountCourseComplete() (int, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	query := `INSERT INTO users (id, name, current_week, current_suggestion, completed_suggestions, created_at, last_active_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		user.ID,
		user.Name,
		user.CurrentWeek,
		user.CurrentSuggestion,
		user.CompletedSuggestions,
		user.CreatedAt,
		user.LastActiveAt,
	)

	return err
}

func (r *userRepository) ByID(id string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.Get(user, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *userRepository) Update(user *model.User) error {
	query := `UPDATE users
	          SET name = $1, current_week = $2, current_suggestion = $3, completed_suggestions = $4, last_active_at = $5
	          WHERE id = $6`

	user.LastActiveAt = time.Now()

	result, err := r.db.Exec(query,
		user.Name,
		user.CurrentWeek,
		user.CurrentSuggestion,
		user.CompletedSuggestions,
		user.LastActiveAt,
		user.ID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

// TouchLastActive bumps last_active_at without rewriting the progress
// columns, so activity tracking never races a concurrent completion.
func (r *userRepository) TouchLastActive(id string) error {
	query := `UPDATE users SET last_active_at = $1 WHERE id = $2`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

func (r *userRepository) CountCourseComplete() (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE completed_suggestions >= $1`
	err := r.db.QueryRow(query, 42).Scan(&count)
	return count, err
}
