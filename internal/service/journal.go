package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hermitcove/hermitcove/internal/encouragement"
	"github.com/hermitcove/hermitcove/internal/model"
	"github.com/hermitcove/hermitcove/internal/repository"
	"github.com/hermitcove/hermitcove/internal/validation"
)

type JournalService struct {
	repo          repository.JournalRepository
	userRepo      repository.UserRepository
	generator     encouragement.Generator
	enrichTimeout time.Duration
}

func NewJournalService(
	repo repository.JournalRepository,
	userRepo repository.UserRepository,
	generator encouragement.Generator,
	enrichTimeout time.Duration,
) *JournalService {
	return &JournalService{
		repo:          repo,
		userRepo:      userRepo,
		generator:     generator,
		enrichTimeout: enrichTimeout,
	}
}

// Create stores a journal entry and, when a mood was tagged, returns a short
// best-effort encouragement alongside it. The encouragement is not persisted;
// it only decorates the response.
func (s *JournalService) Create(ctx context.Context, userID, content string, mood *string, week, day *int) (*model.JournalEntry, string, error) {
	content, err := validation.RequiredText("content", content, 10000)
	if err != nil {
		return nil, "", err
	}
	err = validation.ValidateMood(mood)
	if err != nil {
		return nil, "", err
	}
	if week != nil {
		err = validation.ValidateWeek(*week)
		if err != nil {
			return nil, "", err
		}
	}
	if day != nil {
		err = validation.ValidateDay(*day)
		if err != nil {
			return nil, "", err
		}
	}

	_, err = s.userRepo.ByID(userID)
	if err != nil {
		return nil, "", err
	}

	entry := &model.JournalEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Content:   content,
		Mood:      mood,
		Week:      week,
		Day:       day,
		CreatedAt: time.Now(),
	}

	err = s.repo.Create(entry)
	if err != nil {
		return nil, "", err
	}

	err = s.userRepo.TouchLastActive(userID)
	if err != nil {
		slog.Error("failed to bump last active", "error", err, "user_id", userID)
	}

	var message string
	if mood != nil {
		message = s.encourage(ctx, content, *mood, entry.ID)
	}

	return entry, message, nil
}

func (s *JournalService) encourage(ctx context.Context, content, mood, entryID string) string {
	if s.generator == nil {
		return encouragement.FallbackForJournal()
	}

	genCtx, cancel := context.WithTimeout(ctx, s.enrichTimeout)
	defer cancel()

	message, err := s.generator.ForJournal(genCtx, content, mood)
	if err != nil {
		slog.Warn("journal encouragement failed, using fallback", "error", err, "entry_id", entryID)
		return encouragement.FallbackForJournal()
	}

	return message
}

func (s *JournalService) ListByUser(userID string) ([]*model.JournalEntry, error) {
	return s.repo.ByUser(userID)
}
