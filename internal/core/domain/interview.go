package domain

import (
	"fmt"
	"strings"
	"time"
)

type InterviewStatus string

const (
	InterviewStatusScheduled  InterviewStatus = "scheduled"
	InterviewStatusInProgress InterviewStatus = "in_progress"
	InterviewStatusCompleted  InterviewStatus = "completed"
	InterviewStatusCancelled  InterviewStatus = "cancelled"
)

func (s InterviewStatus) Valid() bool {
	switch s {
	case InterviewStatusScheduled, InterviewStatusInProgress, InterviewStatusCompleted, InterviewStatusCancelled:
		return true
	}
	return false
}

type InterviewType string

const (
	InterviewTypeTechnical  InterviewType = "technical"
	InterviewTypeBehavioral InterviewType = "behavioral"
	InterviewTypeFinal      InterviewType = "final"
	InterviewTypePhone      InterviewType = "phone"
)

func (t InterviewType) Valid() bool {
	switch t {
	case InterviewTypeTechnical, InterviewTypeBehavioral, InterviewTypeFinal, InterviewTypePhone:
		return true
	}
	return false
}

type Interview struct {
	ID               string          `json:"id"`
	CandidateID      string          `json:"candidate_id"`
	ScheduledAt      time.Time       `json:"scheduled_at"`
	DurationMinutes  int             `json:"duration_minutes"`
	Status           InterviewStatus `json:"status"`
	Type             InterviewType   `json:"type"`
	Location         string          `json:"location,omitempty"`
	InterviewerEmail string          `json:"interviewer_email,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (i *Interview) Validate() error {
	if strings.TrimSpace(i.CandidateID) == "" {
		return fmt.Errorf("%w: candidate_id is required", ErrInvalidInput)
	}
	if i.ScheduledAt.IsZero() {
		return fmt.Errorf("%w: scheduled_at is required", ErrInvalidInput)
	}
	if i.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration_minutes must be positive", ErrInvalidInput)
	}
	if !i.Status.Valid() {
		return fmt.Errorf("%w: unknown interview status %q", ErrInvalidInput, i.Status)
	}
	if !i.Type.Valid() {
		return fmt.Errorf("%w: unknown interview type %q", ErrInvalidInput, i.Type)
	}
	return nil
}

type InterviewPatch struct {
	ScheduledAt      *time.Time       `json:"scheduled_at,omitempty"`
	DurationMinutes  *int             `json:"duration_minutes,omitempty"`
	Status           *InterviewStatus `json:"status,omitempty"`
	Type             *InterviewType   `json:"type,omitempty"`
	Location         *string          `json:"location,omitempty"`
	InterviewerEmail *string          `json:"interviewer_email,omitempty"`
}

func (p InterviewPatch) Apply(i *Interview) {
	if p.ScheduledAt != nil {
		i.ScheduledAt = *p.ScheduledAt
	}
	if p.DurationMinutes != nil {
		i.DurationMinutes = *p.DurationMinutes
	}
	if p.Status != nil {
		i.Status = *p.Status
	}
	if p.Type != nil {
		i.Type = *p.Type
	}
	if p.Location != nil {
		i.Location = *p.Location
	}
	if p.InterviewerEmail != nil {
		i.InterviewerEmail = *p.InterviewerEmail
	}
}

type InterviewFilter struct {
	CandidateID string
	Status      InterviewStatus
	Limit       int
	Offset      int
}
