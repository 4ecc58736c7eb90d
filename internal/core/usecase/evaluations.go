package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hireloop/interview-service/internal/core/domain"
	"github.com/hireloop/interview-service/internal/core/ports"
)

type EvaluationUseCase struct {
	repo       ports.EvaluationRepository
	interviews ports.InterviewRepository
	recordings ports.RecordingRepository
	evaluator  ports.Evaluator
}

func NewEvaluationUseCase(
	repo ports.EvaluationRepository,
	interviews ports.InterviewRepository,
	recordings ports.RecordingRepository,
	evaluator ports.Evaluator,
) *EvaluationUseCase {
	return &EvaluationUseCase{
		repo:       repo,
		interviews: interviews,
		recordings: recordings,
		evaluator:  evaluator,
	}
}

// Create persists a manually entered evaluation.
func (uc *EvaluationUseCase) Create(ctx context.Context, e *domain.Evaluation) (*domain.Evaluation, error) {
	if e.Recommendation == "" {
		e.Recommendation = domain.RecommendationMaybe
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	if _, err := uc.interviews.GetByID(ctx, e.InterviewID); err != nil {
		if domain.IsKind(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: interview %s does not exist", domain.ErrInvalidInput, e.InterviewID)
		}
		return nil, fmt.Errorf("load interview: %w", err)
	}

	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()

	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create evaluation: %w", err)
	}
	return e, nil
}

func (uc *EvaluationUseCase) Get(ctx context.Context, id string) (*domain.Evaluation, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *EvaluationUseCase) List(ctx context.Context, filter domain.EvaluationFilter) ([]domain.Evaluation, error) {
	return uc.repo.List(ctx, filter)
}

// Analyze runs the AI evaluator over the interview's latest transcribed
// recording and persists the resulting evaluation.
func (uc *EvaluationUseCase) Analyze(ctx context.Context, interviewID string) (*domain.Evaluation, error) {
	interview, err := uc.interviews.GetByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	recordings, err := uc.recordings.List(ctx, interviewID)
	if err != nil {
		return nil, fmt.Errorf("list recordings: %w", err)
	}

	var transcription string
	for _, rec := range recordings {
		if rec.Transcribed() {
			transcription = rec.Transcription
			break
		}
	}
	if transcription == "" {
		return nil, fmt.Errorf("%w: interview %s has no transcribed recording", domain.ErrInvalidInput, interviewID)
	}

	result, err := uc.evaluator.Evaluate(ctx, transcription)
	if err != nil {
		return nil, fmt.Errorf("evaluate transcription: %w", err)
	}

	recommendation := result.Recommendation
	if !recommendation.Valid() {
		recommendation = domain.RecommendationMaybe
	}

	e := &domain.Evaluation{
		ID:                  uuid.NewString(),
		InterviewID:         interview.ID,
		CandidateID:         interview.CandidateID,
		TechnicalScore:      ptr(result.TechnicalScore),
		CommunicationScore:  ptr(result.CommunicationScore),
		ProblemSolvingScore: ptr(result.ProblemSolvingScore),
		OverallScore:        ptr(result.OverallScore),
		Strengths:           strings.Join(result.Strengths, "; "),
		Weaknesses:          strings.Join(result.Weaknesses, "; "),
		Feedback:            result.Feedback,
		Recommendation:      recommendation,
		CreatedAt:           time.Now().UTC(),
	}

	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create evaluation: %w", err)
	}
	return e, nil
}

func ptr(v float64) *float64 {
	return &v
}
