package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hireloop/interview-service/internal/core/domain"
)

type NotificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO notifications (id, recipient_email, type, subject, content, sent, sent_at, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
`, n.ID, n.RecipientEmail, n.Type, n.Subject, n.Content, n.Sent, n.SentAt, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, recipient_email, type, subject, content, sent, sent_at, created_at
FROM notifications
ORDER BY created_at DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(
			&n.ID, &n.RecipientEmail, &n.Type, &n.Subject, &n.Content, &n.Sent, &n.SentAt, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return out, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id string, at time.Time) error {
	result, err := r.db.ExecContext(ctx, `
UPDATE notifications SET sent = TRUE, sent_at = $2 WHERE id = $1
`, id, at)
	if err != nil {
		return fmt.Errorf("mark notification sent: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark notification sent rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
