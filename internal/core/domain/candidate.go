package domain

import (
	"fmt"
	"strings"
	"time"
)

type CandidateStatus string

const (
	CandidateStatusActive    CandidateStatus = "active"
	CandidateStatusHired     CandidateStatus = "hired"
	CandidateStatusRejected  CandidateStatus = "rejected"
	CandidateStatusWithdrawn CandidateStatus = "withdrawn"
)

func (s CandidateStatus) Valid() bool {
	switch s {
	case CandidateStatusActive, CandidateStatusHired, CandidateStatusRejected, CandidateStatusWithdrawn:
		return true
	}
	return false
}

type Candidate struct {
	ID              string          `json:"id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone,omitempty"`
	Position        string          `json:"position"`
	YearsExperience int             `json:"years_experience"`
	Skills          []string        `json:"skills,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Status          CandidateStatus `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (c *Candidate) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (c *Candidate) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" {
		return fmt.Errorf("%w: first_name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(c.LastName) == "" {
		return fmt.Errorf("%w: last_name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(c.Position) == "" {
		return fmt.Errorf("%w: position is required", ErrInvalidInput)
	}
	if c.YearsExperience < 0 {
		return fmt.Errorf("%w: years_experience must not be negative", ErrInvalidInput)
	}
	if !c.Status.Valid() {
		return fmt.Errorf("%w: unknown candidate status %q", ErrInvalidInput, c.Status)
	}
	return nil
}

// CandidatePatch is the explicit optional-field shape for partial updates.
// Nil fields are left untouched.
type CandidatePatch struct {
	FirstName       *string          `json:"first_name,omitempty"`
	LastName        *string          `json:"last_name,omitempty"`
	Email           *string          `json:"email,omitempty"`
	Phone           *string          `json:"phone,omitempty"`
	Position        *string          `json:"position,omitempty"`
	YearsExperience *int             `json:"years_experience,omitempty"`
	Skills          *[]string        `json:"skills,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
	Status          *CandidateStatus `json:"status,omitempty"`
}

func (p CandidatePatch) Apply(c *Candidate) {
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = *p.LastName
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Position != nil {
		c.Position = *p.Position
	}
	if p.YearsExperience != nil {
		c.YearsExperience = *p.YearsExperience
	}
	if p.Skills != nil {
		c.Skills = *p.Skills
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
}

// CandidateFilter narrows candidate listings.
type CandidateFilter struct {
	Status CandidateStatus
	Search string
	Limit  int
	Offset int
}
