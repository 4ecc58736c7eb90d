package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hireloop/interview-service/internal/core/domain"
)

type CandidateRepository struct {
	db *sql.DB
}

func NewCandidateRepository(db *sql.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

func (r *CandidateRepository) Create(ctx context.Context, c *domain.Candidate) error {
	skillsJSON, err := json.Marshal(c.Skills)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO candidates (
	id, first_name, last_name, email, phone, position, years_experience, skills, notes, status, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
`,
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Position, c.YearsExperience,
		skillsJSON, c.Notes, string(c.Status), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert candidate: %w", err)
	}
	return nil
}

func (r *CandidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, first_name, last_name, email, phone, position, years_experience, skills, notes, status, created_at, updated_at
FROM candidates
WHERE id = $1
`, id)

	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("candidate %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	return c, nil
}

func (r *CandidateRepository) List(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	query := `
SELECT id, first_name, last_name, email, phone, position, years_experience, skills, notes, status, created_at, updated_at
FROM candidates
`
	var conditions []string
	var args []any

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", len(args), len(args)))
	}
	if len(conditions) > 0 {
		query += "WHERE " + strings.Join(conditions, " AND ") + "\n"
	}
	query += "ORDER BY created_at DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf("\nLIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidates: %w", err)
	}
	return out, nil
}

func (r *CandidateRepository) Update(ctx context.Context, c *domain.Candidate) error {
	skillsJSON, err := json.Marshal(c.Skills)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `
UPDATE candidates
SET first_name = $2, last_name = $3, email = $4, phone = $5, position = $6,
	years_experience = $7, skills = $8, notes = $9, status = $10, updated_at = $11
WHERE id = $1
`,
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Position,
		c.YearsExperience, skillsJSON, c.Notes, string(c.Status), c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update candidate: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update candidate rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("candidate %s: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *CandidateRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete candidate rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("candidate %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *CandidateRepository) CountByStatus(ctx context.Context, status domain.CandidateStatus) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM candidates WHERE status = $1`, string(status)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count candidates by status: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner) (*domain.Candidate, error) {
	var c domain.Candidate
	var skillsRaw []byte
	var status string

	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Position,
		&c.YearsExperience, &skillsRaw, &c.Notes, &status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(skillsRaw, &c.Skills); err != nil {
		return nil, fmt.Errorf("unmarshal skills: %w", err)
	}
	c.Status = domain.CandidateStatus(status)
	return &c, nil
}
