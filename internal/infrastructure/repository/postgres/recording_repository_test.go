package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/hireloop/interview-service/internal/core/domain"
)

func newRecordingRepoWithMock(t *testing.T) (*RecordingRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return &RecordingRepository{db: db}, mock, func() { _ = db.Close() }
}

func recordingColumns() []string {
	return []string{"id", "interview_id", "video_path", "audio_path", "transcription", "duration_seconds", "file_size_bytes", "created_at", "updated_at"}
}

func TestRecordingGetByIDNotFound(t *testing.T) {
	repo, mock, done := newRecordingRepoWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT id, interview_id, video_path").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRecordingListFiltersByInterview(t *testing.T) {
	repo, mock, done := newRecordingRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(recordingColumns()).
		AddRow("rec-2", "int-1", "", "rec-2_audio_b.wav", "later recording", 60, int64(960000), now, now).
		AddRow("rec-1", "int-1", "", "rec-1_audio_a.wav", "", 0, int64(480000), now.Add(-time.Hour), now.Add(-time.Hour))
	mock.ExpectQuery("SELECT id, interview_id, video_path").
		WithArgs("int-1").
		WillReturnRows(rows)

	out, err := repo.List(context.Background(), "int-1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 recordings, got %d", len(out))
	}
	if !out[0].Transcribed() || out[1].Transcribed() {
		t.Fatalf("expected only newest recording transcribed, got %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSaveTranscriptionNotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock, done := newRecordingRepoWithMock(t)
	defer done()

	mock.ExpectExec("UPDATE recordings").
		WithArgs("missing", "text", 10, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveTranscription(context.Background(), "missing", "text", 10)
	if !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRecordingCreate(t *testing.T) {
	repo, mock, done := newRecordingRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	rec := &domain.Recording{
		ID:            "rec-1",
		InterviewID:   "int-1",
		AudioPath:     "rec-1_audio_call.wav",
		FileSizeBytes: 480000,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	mock.ExpectExec("INSERT INTO recordings").
		WithArgs("rec-1", "int-1", "", "rec-1_audio_call.wav", "", 0, int64(480000), now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
