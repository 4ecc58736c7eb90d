package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hireloop/interview-service/internal/core/domain"
)

type Evaluator struct {
	client *Client
}

func NewEvaluator(client *Client) *Evaluator {
	return &Evaluator{client: client}
}

func (e *Evaluator) Evaluate(ctx context.Context, transcription string) (domain.EvaluationResult, error) {
	content, err := e.client.chatJSON(ctx, buildEvaluationPrompt(transcription))
	if err != nil {
		return domain.EvaluationResult{}, err
	}

	var result domain.EvaluationResult
	if err := json.Unmarshal([]byte(extractJSONObject(content)), &result); err != nil {
		return domain.EvaluationResult{}, fmt.Errorf("parse evaluation json: %w", err)
	}

	result.TechnicalScore = clampScore(result.TechnicalScore)
	result.CommunicationScore = clampScore(result.CommunicationScore)
	result.ProblemSolvingScore = clampScore(result.ProblemSolvingScore)
	result.OverallScore = clampScore(result.OverallScore)
	if result.Strengths == nil {
		result.Strengths = []string{}
	}
	if result.Weaknesses == nil {
		result.Weaknesses = []string{}
	}
	return result, nil
}

// clampScore forces model output into [1,10] regardless of what the API
// returned.
func clampScore(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}
