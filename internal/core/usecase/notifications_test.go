package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hireloop/interview-service/internal/core/domain"
)

type notificationRepoFake struct {
	created    *domain.Notification
	listed     []domain.Notification
	markedID   string
	markedAt   time.Time
	markedCall bool
	err        error
	markErr    error
}

func (f *notificationRepoFake) Create(_ context.Context, n *domain.Notification) error {
	if f.err != nil {
		return f.err
	}
	copyN := *n
	f.created = &copyN
	return nil
}

func (f *notificationRepoFake) List(context.Context) ([]domain.Notification, error) {
	return f.listed, f.err
}

func (f *notificationRepoFake) MarkSent(_ context.Context, id string, at time.Time) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.markedCall = true
	f.markedID = id
	f.markedAt = at
	return nil
}

type mailerFake struct {
	to      string
	subject string
	body    string
	err     error
}

func (f *mailerFake) Send(_ context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.to = to
	f.subject = subject
	f.body = body
	return nil
}

func TestDispatchMarksSent(t *testing.T) {
	repo := &notificationRepoFake{}
	mailer := &mailerFake{}
	uc := NewNotificationUseCase(repo, mailer)

	n, err := uc.Dispatch(context.Background(), &domain.Notification{
		RecipientEmail: "lead@example.com",
		Subject:        "Interview scheduled: Grace Hopper",
		Content:        "Details inside.",
	})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if !n.Sent || n.SentAt == nil {
		t.Fatalf("expected notification marked sent, got sent=%v sent_at=%v", n.Sent, n.SentAt)
	}
	if n.Type != domain.NotificationTypeGeneric {
		t.Fatalf("expected default type generic, got %s", n.Type)
	}
	if repo.markedID != n.ID {
		t.Fatalf("expected MarkSent for %s, got %s", n.ID, repo.markedID)
	}
	if mailer.to != "lead@example.com" || mailer.subject == "" {
		t.Fatalf("expected mail send, got to=%q subject=%q", mailer.to, mailer.subject)
	}
}

func TestDispatchMailFailureLeavesUnsent(t *testing.T) {
	repo := &notificationRepoFake{}
	mailer := &mailerFake{err: errors.New("smtp refused")}
	uc := NewNotificationUseCase(repo, mailer)

	n, err := uc.Dispatch(context.Background(), &domain.Notification{
		RecipientEmail: "lead@example.com",
		Subject:        "Subject",
		Content:        "Body",
	})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if n.Sent || n.SentAt != nil {
		t.Fatalf("expected unsent notification, got sent=%v", n.Sent)
	}
	if repo.created == nil {
		t.Fatalf("expected notification persisted before send")
	}
	if repo.markedCall {
		t.Fatalf("expected no MarkSent after failed send")
	}
}

func TestDispatchValidatesRecipient(t *testing.T) {
	uc := NewNotificationUseCase(&notificationRepoFake{}, &mailerFake{})

	_, err := uc.Dispatch(context.Background(), &domain.Notification{
		Subject: "Subject",
		Content: "Body",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestDispatchPersistFailure(t *testing.T) {
	repo := &notificationRepoFake{err: errors.New("db down")}
	uc := NewNotificationUseCase(repo, &mailerFake{})

	_, err := uc.Dispatch(context.Background(), &domain.Notification{
		RecipientEmail: "lead@example.com",
		Subject:        "Subject",
		Content:        "Body",
	})
	if err == nil {
		t.Fatalf("expected error")
	}
}
