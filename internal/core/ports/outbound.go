package ports

import (
	"context"
	"io"
	"time"

	"github.com/hireloop/interview-service/internal/core/domain"
)

// CandidateRepository persists candidate records.
type CandidateRepository interface {
	Create(ctx context.Context, c *domain.Candidate) error
	GetByID(ctx context.Context, id string) (*domain.Candidate, error)
	List(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error)
	Update(ctx context.Context, c *domain.Candidate) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status domain.CandidateStatus) (int, error)
}

// InterviewRepository persists interviews and answers the scheduling queries.
type InterviewRepository interface {
	Create(ctx context.Context, i *domain.Interview) error
	GetByID(ctx context.Context, id string) (*domain.Interview, error)
	List(ctx context.Context, filter domain.InterviewFilter) ([]domain.Interview, error)
	Update(ctx context.Context, i *domain.Interview) error
	ListScheduledBetween(ctx context.Context, from, to time.Time) ([]domain.Interview, error)
	CountAll(ctx context.Context) (int, error)
	CountScheduledBetween(ctx context.Context, from, to time.Time) (int, error)
}

// RecordingRepository persists recording metadata and transcriptions.
type RecordingRepository interface {
	Create(ctx context.Context, rec *domain.Recording) error
	GetByID(ctx context.Context, id string) (*domain.Recording, error)
	List(ctx context.Context, interviewID string) ([]domain.Recording, error)
	SaveTranscription(ctx context.Context, id, text string, durationSeconds int) error
}

// EvaluationRepository persists evaluations and serves score aggregates.
type EvaluationRepository interface {
	Create(ctx context.Context, e *domain.Evaluation) error
	GetByID(ctx context.Context, id string) (*domain.Evaluation, error)
	List(ctx context.Context, filter domain.EvaluationFilter) ([]domain.Evaluation, error)
	AverageOverallScore(ctx context.Context) (avg float64, scored int, err error)
}

// NotificationRepository persists outbound notification rows.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context) ([]domain.Notification, error)
	MarkSent(ctx context.Context, id string, at time.Time) error
}

// ObjectStorage stores uploaded recording files.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// Transcriber converts stored audio bytes into text. Plain request/response,
// no retry.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string, sizeBytes int64) (domain.TranscriptionResult, error)
}

// Evaluator scores a transcription. Scores come back clamped into [1,10].
type Evaluator interface {
	Evaluate(ctx context.Context, transcription string) (domain.EvaluationResult, error)
}

// Mailer is the opaque outbound email send.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
