package service

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hermitcove/hermitcove/internal/model"
	"github.com/hermitcove/hermitcove/internal/repository"
	"github.com/hermitcove/hermitcove/internal/validation"
)

type FeedbackService struct {
	repo         repository.FeedbackRepository
	emailService *EmailService
}

func NewFeedbackService(repo repository.FeedbackRepository, emailService *EmailService) *FeedbackService {
	return &FeedbackService{
		repo:         repo,
		emailService: emailService,
	}
}

// Submit appends a feedback message and forwards it to the creator by email.
// Email delivery is best-effort; the stored row is the source of truth.
func (s *FeedbackService) Submit(message, userAgent string) (*model.Feedback, error) {
	message, err := validation.RequiredText("message", message, 5000)
	if err != nil {
		return nil, err
	}

	feedback := &model.Feedback{
		ID:        uuid.New().String(),
		Message:   message,
		CreatedAt: time.Now(),
	}
	if userAgent != "" {
		feedback.UserAgent = &userAgent
	}

	err = s.repo.Create(feedback)
	if err != nil {
		return nil, err
	}

	err = s.emailService.SendFeedback(message, userAgent, feedback.CreatedAt)
	if err != nil {
		slog.Error("failed to send feedback email", "error", err, "feedback_id", feedback.ID)
	}

	return feedback, nil
}

func (s *FeedbackService) List() ([]*model.Feedback, error) {
	return s.repo.All()
}
