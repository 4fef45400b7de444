package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client    *resend.Client
	fromEmail string
	toEmail   string
	appName   string
	isDev     bool
}

func NewEmailService(apiKey, fromEmail, toEmail, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		toEmail:   toEmail,
		appName:   appName,
		isDev:     isDev,
	}
}

// SendFeedback forwards a user's feedback message to the creator. In
// development the email is logged instead of sent.
func (s *EmailService) SendFeedback(message, userAgent string, receivedAt time.Time) error {
	subject := fmt.Sprintf("New feedback for %s", s.appName)
	body := feedbackEmailBody(message, userAgent, receivedAt, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "feedback", "to", s.toEmail, "subject", subject)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{s.toEmail},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", "feedback", "to", s.toEmail)
	}
	return err
}

func feedbackEmailBody(message, userAgent string, receivedAt time.Time, appName string) string {
	body := fmt.Sprintf("Received: %s\n\nMessage:\n%s\n", receivedAt.Format(time.RFC3339), message)
	if userAgent != "" {
		body += fmt.Sprintf("\nUser Agent: %s\n", userAgent)
	}
	body += fmt.Sprintf("\n---\nThis feedback was submitted through the %s app.\n", appName)
	return body
}
