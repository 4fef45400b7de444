package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/hermitcove/hermitcove/internal/model"
	"github.com/hermitcove/hermitcove/internal/repository"
	"github.com/hermitcove/hermitcove/internal/validation"
)

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create onboards a new user at the start of the course: week 1, day 1,
// nothing completed.
func (s *UserService) Create(name string) (*model.User, error) {
	name, err := validation.ValidateName(name)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &model.User{
		ID:                   uuid.New().String(),
		Name:                 name,
		CurrentWeek:          1,
		CurrentSuggestion:    1,
		CompletedSuggestions: 0,
		CreatedAt:            now,
		LastActiveAt:         now,
	}

	err = s.repo.Create(user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) ByID(id string) (*model.User, error) {
	return s.repo.ByID(id)
}

// UserPatch carries a partial update; nil fields are left untouched.
type UserPatch struct {
	Name *string `json:"name"`
}

func (s *UserService) Update(id string, patch UserPatch) (*model.User, error) {
	user, err := s.repo.ByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name, err := validation.ValidateName(*patch.Name)
		if err != nil {
			return nil, err
		}
		user.Name = name
	}

	err = s.repo.Update(user)
	if err != nil {
		return nil, err
	}

	return user, nil
}
