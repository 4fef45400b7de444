package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hermitcove/hermitcove/internal/encouragement"
	"github.com/hermitcove/hermitcove/internal/model"
	"github.com/hermitcove/hermitcove/internal/progress"
	"github.com/hermitcove/hermitcove/internal/repository"
	"github.com/hermitcove/hermitcove/internal/validation"
)

var (
	ErrSuggestionLocked   = errors.New("suggestion is locked: complete earlier exercises first")
	ErrReflectionRequired = errors.New("a reflection must be submitted before completing the exercise")
)

type ReflectionService struct {
	repo           repository.ReflectionRepository
	suggestionRepo repository.SuggestionRepository
	userRepo       repository.UserRepository
	generator      encouragement.Generator
	enrichTimeout  time.Duration
	locks          *userLocks
}

func NewReflectionService(
	repo repository.ReflectionRepository,
	suggestionRepo repository.SuggestionRepository,
	userRepo repository.UserRepository,
	generator encouragement.Generator,
	enrichTimeout time.Duration,
) *ReflectionService {
	return &ReflectionService{
		repo:           repo,
		suggestionRepo: suggestionRepo,
		userRepo:       userRepo,
		generator:      generator,
		enrichTimeout:  enrichTimeout,
		locks:          newUserLocks(),
	}
}

// Submit stores the user's reflection on one exercise, then attempts
// enrichment. The row is persisted before the generator is called, so a
// generator failure can only cost the AI response, never the reflection.
func (s *ReflectionService) Submit(ctx context.Context, userID, suggestionID, text string) (*model.Reflection, error) {
	text, err := validation.RequiredText("reflection", text, 10000)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.ByID(userID)
	if err != nil {
		return nil, err
	}

	suggestion, err := s.suggestionRepo.ByID(suggestionID)
	if err != nil {
		return nil, err
	}

	if !progress.Accessible(user, suggestion.Week, suggestion.Day) {
		return nil, ErrSuggestionLocked
	}

	reflection := &model.Reflection{
		ID:           uuid.New().String(),
		UserID:       userID,
		SuggestionID: suggestionID,
		Reflection:   text,
		Completed:    false,
		CreatedAt:    time.Now(),
	}

	err = s.repo.Upsert(reflection)
	if err != nil {
		return nil, fmt.Errorf("failed to store reflection: %w", err)
	}

	err = s.userRepo.TouchLastActive(userID)
	if err != nil {
		slog.Error("failed to bump last active", "error", err, "user_id", userID)
	}

	s.enrich(ctx, reflection, suggestion.Description)

	return reflection, nil
}

// enrich fills in ai_response and sentiment, degrading to the static pool when
// the generator is missing, slow, or returns something unusable.
func (s *ReflectionService) enrich(ctx context.Context, reflection *model.Reflection, exerciseDescription string) {
	enc := encouragement.FallbackForReflection()

	if s.generator != nil {
		genCtx, cancel := context.WithTimeout(ctx, s.enrichTimeout)
		defer cancel()

		generated, err := s.generator.ForReflection(genCtx, reflection.Reflection, exerciseDescription)
		if err != nil {
			slog.Warn("encouragement generation failed, using fallback", "error", err, "reflection_id", reflection.ID)
		} else {
			enc = generated
		}
	}

	err := s.repo.SetEnrichment(reflection.ID, enc.Message, enc.Sentiment)
	if err != nil {
		slog.Error("failed to store enrichment", "error", err, "reflection_id", reflection.ID)
		return
	}

	reflection.AIResponse = &enc.Message
	reflection.Sentiment = &enc.Sentiment
}

// Complete finalizes the exercise behind the reflection and advances the
// user's progress cursor. The per-user lock covers the whole read-modify-write
// so concurrent double-clicks cannot lose a completion.
func (s *ReflectionService) Complete(ctx context.Context, userID, suggestionID string) (*model.User, error) {
	lock := s.locks.get(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := s.userRepo.ByID(userID)
	if err != nil {
		return nil, err
	}

	reflection, err := s.repo.ByUserSuggestion(userID, suggestionID)
	if errors.Is(err, repository.ErrReflectionNotFound) {
		return nil, ErrReflectionRequired
	}
	if err != nil {
		return nil, err
	}

	err = progress.Advance(user)
	if err != nil {
		return nil, err
	}

	err = s.repo.SetCompleted(reflection.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark reflection completed: %w", err)
	}

	err = s.userRepo.Update(user)
	if err != nil {
		return nil, fmt.Errorf("failed to advance progress: %w", err)
	}

	return user, nil
}

func (s *ReflectionService) ByUserSuggestion(userID, suggestionID string) (*model.Reflection, error) {
	return s.repo.ByUserSuggestion(userID, suggestionID)
}

func (s *ReflectionService) ListByUser(userID string) ([]*model.Reflection, error) {
	return s.repo.ByUser(userID)
}
