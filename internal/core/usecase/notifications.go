package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hireloop/interview-service/internal/core/domain"
	"github.com/hireloop/interview-service/internal/core/ports"
)

type NotificationUseCase struct {
	repo   ports.NotificationRepository
	mailer ports.Mailer
}

func NewNotificationUseCase(repo ports.NotificationRepository, mailer ports.Mailer) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, mailer: mailer}
}

// Dispatch persists the notification row and sends it immediately. A failed
// send leaves the row unsent with no retry; only persistence failures are
// returned as errors.
func (uc *NotificationUseCase) Dispatch(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if n.Type == "" {
		n.Type = domain.NotificationTypeGeneric
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	n.ID = uuid.NewString()
	n.Sent = false
	n.SentAt = nil
	n.CreatedAt = time.Now().UTC()

	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	if err := uc.mailer.Send(ctx, n.RecipientEmail, n.Subject, n.Content); err != nil {
		slog.Warn("notification send failed",
			"notification_id", n.ID,
			"recipient", n.RecipientEmail,
			"error", err,
		)
		return n, nil
	}

	sentAt := time.Now().UTC()
	if err := uc.repo.MarkSent(ctx, n.ID, sentAt); err != nil {
		return nil, fmt.Errorf("mark notification sent: %w", err)
	}
	n.Sent = true
	n.SentAt = &sentAt
	return n, nil
}

func (uc *NotificationUseCase) List(ctx context.Context) ([]domain.Notification, error) {
	return uc.repo.List(ctx)
}
