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

type InterviewUseCase struct {
	repo       ports.InterviewRepository
	candidates ports.CandidateRepository
	notifier   ports.NotificationService
}

func NewInterviewUseCase(
	repo ports.InterviewRepository,
	candidates ports.CandidateRepository,
	notifier ports.NotificationService,
) *InterviewUseCase {
	return &InterviewUseCase{
		repo:       repo,
		candidates: candidates,
		notifier:   notifier,
	}
}

// Schedule creates an interview and synchronously dispatches the
// interviewer notification. A failed dispatch never fails the create.
func (uc *InterviewUseCase) Schedule(ctx context.Context, i *domain.Interview) (*domain.Interview, error) {
	if i.Status == "" {
		i.Status = domain.InterviewStatusScheduled
	}
	if err := i.Validate(); err != nil {
		return nil, err
	}

	candidate, err := uc.candidates.GetByID(ctx, i.CandidateID)
	if err != nil {
		if domain.IsKind(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: candidate %s does not exist", domain.ErrInvalidInput, i.CandidateID)
		}
		return nil, fmt.Errorf("load candidate: %w", err)
	}

	now := time.Now().UTC()
	i.ID = uuid.NewString()
	i.CreatedAt = now
	i.UpdatedAt = now

	if err := uc.repo.Create(ctx, i); err != nil {
		return nil, fmt.Errorf("create interview: %w", err)
	}

	if i.InterviewerEmail != "" {
		notification := composeScheduleNotification(i, candidate)
		if _, err := uc.notifier.Dispatch(ctx, notification); err != nil {
			slog.Warn("interview notification dispatch failed",
				"interview_id", i.ID,
				"recipient", i.InterviewerEmail,
				"error", err,
			)
		}
	}

	return i, nil
}

func (uc *InterviewUseCase) Get(ctx context.Context, id string) (*domain.Interview, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *InterviewUseCase) List(ctx context.Context, filter domain.InterviewFilter) ([]domain.Interview, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown interview status %q", domain.ErrInvalidInput, filter.Status)
	}
	filter.Limit = clampLimit(filter.Limit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return uc.repo.List(ctx, filter)
}

func (uc *InterviewUseCase) Update(ctx context.Context, id string, patch domain.InterviewPatch) (*domain.Interview, error) {
	i, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(i)
	if err := i.Validate(); err != nil {
		return nil, err
	}
	i.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, i); err != nil {
		return nil, fmt.Errorf("update interview: %w", err)
	}
	return i, nil
}

// Upcoming returns interviews still in status "scheduled" whose scheduled_at
// falls within the given civil day, interpreted in UTC.
func (uc *InterviewUseCase) Upcoming(ctx context.Context, day time.Time) ([]domain.Interview, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(24*time.Hour - time.Nanosecond)
	return uc.repo.ListScheduledBetween(ctx, from, to)
}

func composeScheduleNotification(i *domain.Interview, c *domain.Candidate) *domain.Notification {
	location := i.Location
	if location == "" {
		location = "remote"
	}
	content := fmt.Sprintf(
		"An interview with %s has been scheduled.\n\n"+
			"Position: %s\n"+
			"Date: %s\n"+
			"Duration: %d minutes\n"+
			"Type: %s\n"+
			"Location: %s\n",
		c.FullName(),
		c.Position,
		i.ScheduledAt.UTC().Format(time.RFC1123),
		i.DurationMinutes,
		i.Type,
		location,
	)
	return &domain.Notification{
		RecipientEmail: i.InterviewerEmail,
		Type:           domain.NotificationTypeInterviewScheduled,
		Subject:        fmt.Sprintf("Interview scheduled: %s", c.FullName()),
		Content:        content,
	}
}
