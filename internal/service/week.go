package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hermitcove/hermitcove/internal/model"
	"github.com/hermitcove/hermitcove/internal/progress"
	"github.com/hermitcove/hermitcove/internal/repository"
	"github.com/hermitcove/hermitcove/internal/validation"
)

var (
	ErrWeekNotComplete = errors.New("week is not complete yet")
)

type WeekService struct {
	repo     repository.WeeklyCompletionRepository
	userRepo repository.UserRepository
}

func NewWeekService(repo repository.WeeklyCompletionRepository, userRepo repository.UserRepository) *WeekService {
	return &WeekService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// CompleteWeek records the milestone for one course week. Only allowed once
// all 7 exercises of the week are done, and only once per (user, week).
func (s *WeekService) CompleteWeek(userID string, week int, reflection *string) (*model.WeeklyCompletion, error) {
	err := validation.ValidateWeek(week)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.ByID(userID)
	if err != nil {
		return nil, err
	}

	if !progress.WeekComplete(user, week) {
		return nil, ErrWeekNotComplete
	}

	if reflection != nil {
		trimmed := strings.TrimSpace(*reflection)
		if trimmed == "" {
			reflection = nil
		} else {
			reflection = &trimmed
		}
	}

	completion := &model.WeeklyCompletion{
		ID:          uuid.New().String(),
		UserID:      userID,
		Week:        week,
		Reflection:  reflection,
		CompletedAt: time.Now(),
	}

	err = s.repo.Create(completion)
	if err != nil {
		return nil, err
	}

	return completion, nil
}

func (s *WeekService) Completion(userID string, week int) (*model.WeeklyCompletion, error) {
	err := validation.ValidateWeek(week)
	if err != nil {
		return nil, repository.ErrCompletionNotFound
	}
	return s.repo.ByUserWeek(userID, week)
}
