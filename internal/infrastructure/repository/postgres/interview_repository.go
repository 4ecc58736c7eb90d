package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hireloop/interview-service/internal/core/domain"
)

type InterviewRepository struct {
	db *sql.DB
}

func NewInterviewRepository(db *sql.DB) *InterviewRepository {
	return &InterviewRepository{db: db}
}

func (r *InterviewRepository) Create(ctx context.Context, i *domain.Interview) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO interviews (
	id, candidate_id, scheduled_at, duration_minutes, status, type, location, interviewer_email, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
`,
		i.ID, i.CandidateID, i.ScheduledAt, i.DurationMinutes, string(i.Status), string(i.Type),
		i.Location, i.InterviewerEmail, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert interview: %w", err)
	}
	return nil
}

func (r *InterviewRepository) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, candidate_id, scheduled_at, duration_minutes, status, type, location, interviewer_email, created_at, updated_at
FROM interviews
WHERE id = $1
`, id)

	i, err := scanInterview(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("interview %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get interview: %w", err)
	}
	return i, nil
}

func (r *InterviewRepository) List(ctx context.Context, filter domain.InterviewFilter) ([]domain.Interview, error) {
	query := `
SELECT id, candidate_id, scheduled_at, duration_minutes, status, type, location, interviewer_email, created_at, updated_at
FROM interviews
`
	var conditions []string
	var args []any

	if filter.CandidateID != "" {
		args = append(args, filter.CandidateID)
		conditions = append(conditions, fmt.Sprintf("candidate_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += "WHERE " + strings.Join(conditions, " AND ") + "\n"
	}
	query += "ORDER BY scheduled_at DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf("\nLIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	defer rows.Close()

	return collectInterviews(rows)
}

func (r *InterviewRepository) Update(ctx context.Context, i *domain.Interview) error {
	result, err := r.db.ExecContext(ctx, `
UPDATE interviews
SET scheduled_at = $2, duration_minutes = $3, status = $4, type = $5, location = $6, interviewer_email = $7, updated_at = $8
WHERE id = $1
`,
		i.ID, i.ScheduledAt, i.DurationMinutes, string(i.Status), string(i.Type),
		i.Location, i.InterviewerEmail, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update interview: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update interview rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("interview %s: %w", i.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *InterviewRepository) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]domain.Interview, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, candidate_id, scheduled_at, duration_minutes, status, type, location, interviewer_email, created_at, updated_at
FROM interviews
WHERE status = $1 AND scheduled_at BETWEEN $2 AND $3
ORDER BY scheduled_at ASC
`, string(domain.InterviewStatusScheduled), from, to)
	if err != nil {
		return nil, fmt.Errorf("list upcoming interviews: %w", err)
	}
	defer rows.Close()

	return collectInterviews(rows)
}

func (r *InterviewRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM interviews`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count interviews: %w", err)
	}
	return count, nil
}

func (r *InterviewRepository) CountScheduledBetween(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM interviews WHERE scheduled_at BETWEEN $1 AND $2
`, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count interviews in range: %w", err)
	}
	return count, nil
}

func collectInterviews(rows *sql.Rows) ([]domain.Interview, error) {
	out := make([]domain.Interview, 0)
	for rows.Next() {
		i, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan interview: %w", err)
		}
		out = append(out, *i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interviews: %w", err)
	}
	return out, nil
}

func scanInterview(row rowScanner) (*domain.Interview, error) {
	var i domain.Interview
	var status, interviewType string

	err := row.Scan(
		&i.ID, &i.CandidateID, &i.ScheduledAt, &i.DurationMinutes, &status, &interviewType,
		&i.Location, &i.InterviewerEmail, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	i.Status = domain.InterviewStatus(status)
	i.Type = domain.InterviewType(interviewType)
	return &i, nil
}
