package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/hireloop/interview-service/internal/core/domain"
)

func newNotificationRepoWithMock(t *testing.T) (*NotificationRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return &NotificationRepository{db: db}, mock, func() { _ = db.Close() }
}

func TestNotificationCreateUnsent(t *testing.T) {
	repo, mock, done := newNotificationRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	mock.ExpectExec("INSERT INTO notifications").
		WithArgs("ntf-1", "lead@example.com", "interview_scheduled", "Subject", "Body", false, nil, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &domain.Notification{
		ID:             "ntf-1",
		RecipientEmail: "lead@example.com",
		Type:           domain.NotificationTypeInterviewScheduled,
		Subject:        "Subject",
		Content:        "Body",
		CreatedAt:      now,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestNotificationListScansSentAt(t *testing.T) {
	repo, mock, done := newNotificationRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	sentAt := now.Add(time.Second)
	rows := sqlmock.NewRows([]string{"id", "recipient_email", "type", "subject", "content", "sent", "sent_at", "created_at"}).
		AddRow("ntf-2", "lead@example.com", "generic", "S2", "B2", true, sentAt, now).
		AddRow("ntf-1", "lead@example.com", "generic", "S1", "B1", false, nil, now.Add(-time.Hour))
	mock.ExpectQuery("SELECT id, recipient_email, type").
		WillReturnRows(rows)

	out, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(out))
	}
	if out[0].SentAt == nil || !out[0].SentAt.Equal(sentAt) {
		t.Fatalf("expected sent_at %v, got %v", sentAt, out[0].SentAt)
	}
	if out[1].SentAt != nil {
		t.Fatalf("expected nil sent_at for unsent row")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestMarkSentNotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock, done := newNotificationRepoWithMock(t)
	defer done()

	at := time.Now().UTC()
	mock.ExpectExec("UPDATE notifications").
		WithArgs("missing", at).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkSent(context.Background(), "missing", at)
	if !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
