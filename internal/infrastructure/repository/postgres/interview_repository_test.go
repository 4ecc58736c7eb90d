package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/hireloop/interview-service/internal/core/domain"
)

func newInterviewRepoWithMock(t *testing.T) (*InterviewRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return &InterviewRepository{db: db}, mock, func() { _ = db.Close() }
}

func interviewColumns() []string {
	return []string{"id", "candidate_id", "scheduled_at", "duration_minutes", "status", "type", "location", "interviewer_email", "created_at", "updated_at"}
}

func TestInterviewGetByIDNotFound(t *testing.T) {
	repo, mock, done := newInterviewRepoWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT id, candidate_id, scheduled_at").
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

func TestInterviewListFiltersByCandidateAndStatus(t *testing.T) {
	repo, mock, done := newInterviewRepoWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT id, candidate_id, scheduled_at").
		WithArgs("cand-1", "scheduled", 50, 0).
		WillReturnRows(sqlmock.NewRows(interviewColumns()))

	_, err := repo.List(context.Background(), domain.InterviewFilter{
		CandidateID: "cand-1",
		Status:      domain.InterviewStatusScheduled,
		Limit:       50,
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListScheduledBetweenOnlyScheduled(t *testing.T) {
	repo, mock, done := newInterviewRepoWithMock(t)
	defer done()

	from := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	to := from.Add(24*time.Hour - time.Nanosecond)
	rows := sqlmock.NewRows(interviewColumns()).AddRow(
		"int-1", "cand-1", from.Add(10*time.Hour), 60, "scheduled", "technical", "", "lead@example.com", from, from,
	)
	mock.ExpectQuery("SELECT id, candidate_id, scheduled_at").
		WithArgs("scheduled", from, to).
		WillReturnRows(rows)

	out, err := repo.ListScheduledBetween(context.Background(), from, to)
	if err != nil {
		t.Fatalf("ListScheduledBetween() error = %v", err)
	}
	if len(out) != 1 || out[0].Status != domain.InterviewStatusScheduled {
		t.Fatalf("expected one scheduled interview, got %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestInterviewUpdateNotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock, done := newInterviewRepoWithMock(t)
	defer done()

	mock.ExpectExec("UPDATE interviews").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.Interview{
		ID:              "missing",
		CandidateID:     "cand-1",
		ScheduledAt:     time.Now(),
		DurationMinutes: 60,
		Status:          domain.InterviewStatusScheduled,
		Type:            domain.InterviewTypeTechnical,
	})
	if !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestInterviewCounts(t *testing.T) {
	repo, mock, done := newInterviewRepoWithMock(t)
	defer done()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM interviews`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	total, err := repo.CountAll(context.Background())
	if err != nil {
		t.Fatalf("CountAll() error = %v", err)
	}
	if total != 12 {
		t.Fatalf("expected 12, got %d", total)
	}

	from := time.Now().AddDate(0, 0, -7)
	to := time.Now()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM interviews WHERE scheduled_at BETWEEN`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	week, err := repo.CountScheduledBetween(context.Background(), from, to)
	if err != nil {
		t.Fatalf("CountScheduledBetween() error = %v", err)
	}
	if week != 3 {
		t.Fatalf("expected 3, got %d", week)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
