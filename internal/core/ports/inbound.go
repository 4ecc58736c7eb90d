package ports

import (
	"context"
	"io"
	"time"

	"github.com/hireloop/interview-service/internal/core/domain"
)

// CandidateService is the inbound contract for candidate CRUD.
type CandidateService interface {
	Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error)
	Get(ctx context.Context, id string) (*domain.Candidate, error)
	List(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error)
	Update(ctx context.Context, id string, patch domain.CandidatePatch) (*domain.Candidate, error)
	Delete(ctx context.Context, id string) error
}

// InterviewService is the inbound contract for scheduling and querying
// interviews.
type InterviewService interface {
	Schedule(ctx context.Context, i *domain.Interview) (*domain.Interview, error)
	Get(ctx context.Context, id string) (*domain.Interview, error)
	List(ctx context.Context, filter domain.InterviewFilter) ([]domain.Interview, error)
	Update(ctx context.Context, id string, patch domain.InterviewPatch) (*domain.Interview, error)
	Upcoming(ctx context.Context, day time.Time) ([]domain.Interview, error)
}

// FilePart is one uploaded multipart file.
type FilePart struct {
	Filename string
	Size     int64
	Data     io.Reader
}

// RecordingUpload carries the multipart fields of a recording upload. Video
// and Audio are both optional, but at least one must be present.
type RecordingUpload struct {
	InterviewID string
	Video       *FilePart
	Audio       *FilePart
}

// RecordingService is the inbound contract for recording upload and
// transcription.
type RecordingService interface {
	Upload(ctx context.Context, upload RecordingUpload) (*domain.Recording, error)
	Get(ctx context.Context, id string) (*domain.Recording, error)
	List(ctx context.Context, interviewID string) ([]domain.Recording, error)
	Transcribe(ctx context.Context, id string) (*domain.Recording, error)
}

// EvaluationService is the inbound contract for manual and AI-driven
// evaluations.
type EvaluationService interface {
	Create(ctx context.Context, e *domain.Evaluation) (*domain.Evaluation, error)
	Get(ctx context.Context, id string) (*domain.Evaluation, error)
	List(ctx context.Context, filter domain.EvaluationFilter) ([]domain.Evaluation, error)
	Analyze(ctx context.Context, interviewID string) (*domain.Evaluation, error)
}

// AnalyticsService serves the metrics rollup and the export data set.
type AnalyticsService interface {
	Metrics(ctx context.Context) (*domain.Metrics, error)
	ExportData(ctx context.Context) ([]domain.Candidate, []domain.Evaluation, error)
}

// NotificationService composes, persists and dispatches notifications.
type NotificationService interface {
	Dispatch(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	List(ctx context.Context) ([]domain.Notification, error)
}
