package service

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hermitcove/hermitcove/internal/course"
	"github.com/hermitcove/hermitcove/internal/model"
	"github.com/hermitcove/hermitcove/internal/progress"
	"github.com/hermitcove/hermitcove/internal/repository"
)

type SuggestionService struct {
	repo     repository.SuggestionRepository
	userRepo repository.UserRepository
	catalog  *course.Catalog
}

func NewSuggestionService(repo repository.SuggestionRepository, userRepo repository.UserRepository, catalog *course.Catalog) *SuggestionService {
	return &SuggestionService{
		repo:     repo,
		userRepo: userRepo,
		catalog:  catalog,
	}
}

// Seed writes the curriculum into the suggestions table. Runs once at startup
// and is a no-op when the table is already populated.
func (s *SuggestionService) Seed() error {
	count, err := s.repo.Count()
	if err != nil {
		return fmt.Errorf("failed to check suggestion count: %w", err)
	}
	if count > 0 {
		return nil
	}

	exercises := s.catalog.Exercises()
	suggestions := make([]*model.Suggestion, 0, len(exercises))
	for _, e := range exercises {
		suggestions = append(suggestions, &model.Suggestion{
			ID:          uuid.New().String(),
			Week:        e.Week,
			Day:         e.Day,
			Title:       e.Title,
			Description: e.Description,
			Category:    e.Category,
		})
	}

	err = s.repo.SeedAll(suggestions)
	if err != nil {
		return fmt.Errorf("failed to seed curriculum: %w", err)
	}

	slog.Info("curriculum seeded", "suggestions", len(suggestions))
	return nil
}

func (s *SuggestionService) All() ([]*model.Suggestion, error) {
	return s.repo.All()
}

// ByWeekDay returns the exercise at (week, day). Coordinates outside the
// curriculum grid are a normal not-found, not a server error.
func (s *SuggestionService) ByWeekDay(week, day int) (*model.Suggestion, error) {
	_, ok := s.catalog.ByWeekDay(week, day)
	if !ok {
		return nil, repository.ErrSuggestionNotFound
	}
	return s.repo.ByWeekDay(week, day)
}

// StateFor derives how the exercise at (week, day) presents to one user:
// completed behind the progress cursor, current on it, locked ahead of it.
func (s *SuggestionService) StateFor(userID string, week, day int) (progress.State, error) {
	user, err := s.userRepo.ByID(userID)
	if err != nil {
		return "", err
	}
	return progress.StateOf(user, week, day), nil
}

func (s *SuggestionService) ByID(id string) (*model.Suggestion, error) {
	return s.repo.ByID(id)
}
