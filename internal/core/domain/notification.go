package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	NotificationTypeInterviewScheduled = "interview_scheduled"
	NotificationTypeGeneric            = "generic"
)

type Notification struct {
	ID             string     `json:"id"`
	RecipientEmail string     `json:"recipient_email"`
	Type           string     `json:"type"`
	Subject        string     `json:"subject"`
	Content        string     `json:"content"`
	Sent           bool       `json:"sent"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (n *Notification) Validate() error {
	if strings.TrimSpace(n.RecipientEmail) == "" {
		return fmt.Errorf("%w: recipient_email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(n.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidInput)
	}
	if strings.TrimSpace(n.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	return nil
}
