package domain

import (
	"fmt"
	"strings"
	"time"
)

type Recommendation string

const (
	RecommendationHire   Recommendation = "hire"
	RecommendationNoHire Recommendation = "no_hire"
	RecommendationMaybe  Recommendation = "maybe"
)

func (r Recommendation) Valid() bool {
	switch r {
	case RecommendationHire, RecommendationNoHire, RecommendationMaybe:
		return true
	}
	return false
}

// Evaluation scores sit in [0,10]; nil means the score was not assessed.
type Evaluation struct {
	ID                  string         `json:"id"`
	InterviewID         string         `json:"interview_id"`
	CandidateID         string         `json:"candidate_id"`
	TechnicalScore      *float64       `json:"technical_score,omitempty"`
	CommunicationScore  *float64       `json:"communication_score,omitempty"`
	ProblemSolvingScore *float64       `json:"problem_solving_score,omitempty"`
	OverallScore        *float64       `json:"overall_score,omitempty"`
	Strengths           string         `json:"strengths,omitempty"`
	Weaknesses          string         `json:"weaknesses,omitempty"`
	Feedback            string         `json:"feedback,omitempty"`
	Recommendation      Recommendation `json:"recommendation"`
	CreatedAt           time.Time      `json:"created_at"`
}

func (e *Evaluation) Validate() error {
	if strings.TrimSpace(e.InterviewID) == "" {
		return fmt.Errorf("%w: interview_id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(e.CandidateID) == "" {
		return fmt.Errorf("%w: candidate_id is required", ErrInvalidInput)
	}
	if !e.Recommendation.Valid() {
		return fmt.Errorf("%w: unknown recommendation %q", ErrInvalidInput, e.Recommendation)
	}
	for name, score := range map[string]*float64{
		"technical_score":       e.TechnicalScore,
		"communication_score":   e.CommunicationScore,
		"problem_solving_score": e.ProblemSolvingScore,
		"overall_score":         e.OverallScore,
	} {
		if score != nil && (*score < 0 || *score > 10) {
			return fmt.Errorf("%w: %s must be between 0 and 10", ErrInvalidInput, name)
		}
	}
	return nil
}

type EvaluationFilter struct {
	CandidateID string
	InterviewID string
}

// EvaluationResult is the structured verdict returned by the AI evaluator.
type EvaluationResult struct {
	TechnicalScore      float64        `json:"technical_score"`
	CommunicationScore  float64        `json:"communication_score"`
	ProblemSolvingScore float64        `json:"problem_solving_score"`
	OverallScore        float64        `json:"overall_score"`
	Strengths           []string       `json:"strengths"`
	Weaknesses          []string       `json:"weaknesses"`
	Feedback            string         `json:"feedback"`
	Recommendation      Recommendation `json:"recommendation"`
}
