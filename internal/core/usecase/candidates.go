package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hireloop/interview-service/internal/core/domain"
	"github.com/hireloop/interview-service/internal/core/ports"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

type CandidateUseCase struct {
	repo ports.CandidateRepository
}

func NewCandidateUseCase(repo ports.CandidateRepository) *CandidateUseCase {
	return &CandidateUseCase{repo: repo}
}

func (uc *CandidateUseCase) Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	if c.Status == "" {
		c.Status = domain.CandidateStatusActive
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Skills == nil {
		c.Skills = []string{}
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create candidate: %w", err)
	}
	return c, nil
}

func (uc *CandidateUseCase) Get(ctx context.Context, id string) (*domain.Candidate, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *CandidateUseCase) List(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown candidate status %q", domain.ErrInvalidInput, filter.Status)
	}
	filter.Limit = clampLimit(filter.Limit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return uc.repo.List(ctx, filter)
}

// Update applies a partial update. The candidate id and created_at are never
// touched.
func (uc *CandidateUseCase) Update(ctx context.Context, id string, patch domain.CandidatePatch) (*domain.Candidate, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update candidate: %w", err)
	}
	return c, nil
}

func (uc *CandidateUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
