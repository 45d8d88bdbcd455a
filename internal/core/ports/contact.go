package ports

import (
	"context"
	"time"
)

// ContactInput is the public contact form payload.
type ContactInput struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ContactUpdate carries the fields an admin may change on a submission.
type ContactUpdate struct {
	Status *string `json:"status" validate:"omitempty,oneof='New' 'In Progress' 'Resolved' 'Closed'"`
	IsRead *bool   `json:"isRead"`
}

// SubmissionDeduper remembers recently accepted contact submissions so a
// double-posted form does not create two records.
type SubmissionDeduper interface {
	// Lookup returns the submission id stored for fingerprint, if any.
	Lookup(ctx context.Context, fingerprint string) (string, bool, error)
	Remember(ctx context.Context, fingerprint, id string, ttl time.Duration) error
}
