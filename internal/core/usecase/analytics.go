package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hireloop/interview-service/internal/core/domain"
	"github.com/hireloop/interview-service/internal/core/ports"
)

type AnalyticsUseCase struct {
	candidates  ports.CandidateRepository
	interviews  ports.InterviewRepository
	evaluations ports.EvaluationRepository
}

func NewAnalyticsUseCase(
	candidates ports.CandidateRepository,
	interviews ports.InterviewRepository,
	evaluations ports.EvaluationRepository,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		candidates:  candidates,
		interviews:  interviews,
		evaluations: evaluations,
	}
}

// Metrics computes the analytics rollup: total interviews, active candidates,
// interviews scheduled within the trailing 7 days, and the mean of all
// non-null overall scores rounded to one decimal place.
func (uc *AnalyticsUseCase) Metrics(ctx context.Context) (*domain.Metrics, error) {
	total, err := uc.interviews.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count interviews: %w", err)
	}

	active, err := uc.candidates.CountByStatus(ctx, domain.CandidateStatusActive)
	if err != nil {
		return nil, fmt.Errorf("count active candidates: %w", err)
	}

	now := time.Now().UTC()
	thisWeek, err := uc.interviews.CountScheduledBetween(ctx, now.AddDate(0, 0, -7), now)
	if err != nil {
		return nil, fmt.Errorf("count weekly interviews: %w", err)
	}

	avg, scored, err := uc.evaluations.AverageOverallScore(ctx)
	if err != nil {
		return nil, fmt.Errorf("average overall score: %w", err)
	}

	metrics := &domain.Metrics{
		TotalInterviews:    total,
		ActiveCandidates:   active,
		InterviewsThisWeek: thisWeek,
	}
	if scored > 0 {
		metrics.AverageScore = roundToOneDecimal(avg)
	}
	return metrics, nil
}

// ExportData returns the full candidate and evaluation sets for the report
// export.
func (uc *AnalyticsUseCase) ExportData(ctx context.Context) ([]domain.Candidate, []domain.Evaluation, error) {
	candidates, err := uc.candidates.List(ctx, domain.CandidateFilter{})
	if err != nil {
		return nil, nil, fmt.Errorf("list candidates: %w", err)
	}
	evaluations, err := uc.evaluations.List(ctx, domain.EvaluationFilter{})
	if err != nil {
		return nil, nil, fmt.Errorf("list evaluations: %w", err)
	}
	return candidates, evaluations, nil
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
