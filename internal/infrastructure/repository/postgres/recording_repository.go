package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hireloop/interview-service/internal/core/domain"
)

type RecordingRepository struct {
	db *sql.DB
}

func NewRecordingRepository(db *sql.DB) *RecordingRepository {
	return &RecordingRepository{db: db}
}

func (r *RecordingRepository) Create(ctx context.Context, rec *domain.Recording) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO recordings (
	id, interview_id, video_path, audio_path, transcription, duration_seconds, file_size_bytes, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`,
		rec.ID, rec.InterviewID, rec.VideoPath, rec.AudioPath, rec.Transcription,
		rec.DurationSeconds, rec.FileSizeBytes, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert recording: %w", err)
	}
	return nil
}

func (r *RecordingRepository) GetByID(ctx context.Context, id string) (*domain.Recording, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, interview_id, video_path, audio_path, transcription, duration_seconds, file_size_bytes, created_at, updated_at
FROM recordings
WHERE id = $1
`, id)

	rec, err := scanRecording(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("recording %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get recording: %w", err)
	}
	return rec, nil
}

// List returns recordings newest first, optionally narrowed to one interview.
func (r *RecordingRepository) List(ctx context.Context, interviewID string) ([]domain.Recording, error) {
	query := `
SELECT id, interview_id, video_path, audio_path, transcription, duration_seconds, file_size_bytes, created_at, updated_at
FROM recordings
`
	var args []any
	if interviewID != "" {
		query += "WHERE interview_id = $1\n"
		args = append(args, interviewID)
	}
	query += "ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recordings: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Recording, 0)
	for rows.Next() {
		rec, err := scanRecording(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recording: %w", err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recordings: %w", err)
	}
	return out, nil
}

func (r *RecordingRepository) SaveTranscription(ctx context.Context, id, text string, durationSeconds int) error {
	result, err := r.db.ExecContext(ctx, `
UPDATE recordings
SET transcription = $2, duration_seconds = $3, updated_at = $4
WHERE id = $1
`, id, text, durationSeconds, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save transcription: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("save transcription rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("recording %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanRecording(row rowScanner) (*domain.Recording, error) {
	var rec domain.Recording
	err := row.Scan(
		&rec.ID, &rec.InterviewID, &rec.VideoPath, &rec.AudioPath, &rec.Transcription,
		&rec.DurationSeconds, &rec.FileSizeBytes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
