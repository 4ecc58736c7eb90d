package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hireloop/interview-service/internal/core/domain"
)

type EvaluationRepository struct {
	db *sql.DB
}

func NewEvaluationRepository(db *sql.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

func (r *EvaluationRepository) Create(ctx context.Context, e *domain.Evaluation) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO evaluations (
	id, interview_id, candidate_id, technical_score, communication_score, problem_solving_score, overall_score,
	strengths, weaknesses, feedback, recommendation, created_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
`,
		e.ID, e.InterviewID, e.CandidateID, e.TechnicalScore, e.CommunicationScore, e.ProblemSolvingScore,
		e.OverallScore, e.Strengths, e.Weaknesses, e.Feedback, string(e.Recommendation), e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}

func (r *EvaluationRepository) GetByID(ctx context.Context, id string) (*domain.Evaluation, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, interview_id, candidate_id, technical_score, communication_score, problem_solving_score, overall_score,
	strengths, weaknesses, feedback, recommendation, created_at
FROM evaluations
WHERE id = $1
`, id)

	e, err := scanEvaluation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("evaluation %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get evaluation: %w", err)
	}
	return e, nil
}

func (r *EvaluationRepository) List(ctx context.Context, filter domain.EvaluationFilter) ([]domain.Evaluation, error) {
	query := `
SELECT id, interview_id, candidate_id, technical_score, communication_score, problem_solving_score, overall_score,
	strengths, weaknesses, feedback, recommendation, created_at
FROM evaluations
`
	var conditions []string
	var args []any

	if filter.CandidateID != "" {
		args = append(args, filter.CandidateID)
		conditions = append(conditions, fmt.Sprintf("candidate_id = $%d", len(args)))
	}
	if filter.InterviewID != "" {
		args = append(args, filter.InterviewID)
		conditions = append(conditions, fmt.Sprintf("interview_id = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += "WHERE " + strings.Join(conditions, " AND ") + "\n"
	}
	query += "ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Evaluation, 0)
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evaluations: %w", err)
	}
	return out, nil
}

// AverageOverallScore returns the mean of all non-null overall scores and how
// many evaluations carried one. The average is unrounded; presentation
// rounding happens in the analytics use case.
func (r *EvaluationRepository) AverageOverallScore(ctx context.Context) (float64, int, error) {
	var avg sql.NullFloat64
	var scored int
	err := r.db.QueryRowContext(ctx, `
SELECT AVG(overall_score), COUNT(overall_score) FROM evaluations
`).Scan(&avg, &scored)
	if err != nil {
		return 0, 0, fmt.Errorf("average overall score: %w", err)
	}
	if !avg.Valid {
		return 0, 0, nil
	}
	return avg.Float64, scored, nil
}

func scanEvaluation(row rowScanner) (*domain.Evaluation, error) {
	var e domain.Evaluation
	var recommendation string

	err := row.Scan(
		&e.ID, &e.InterviewID, &e.CandidateID, &e.TechnicalScore, &e.CommunicationScore,
		&e.ProblemSolvingScore, &e.OverallScore, &e.Strengths, &e.Weaknesses, &e.Feedback,
		&recommendation, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Recommendation = domain.Recommendation(recommendation)
	return &e, nil
}
