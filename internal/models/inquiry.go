package models

import "time"

// InquiryStatus enumerates the one-way-forward inquiry workflow.
type InquiryStatus string

const (
	InquiryStatusReceived   InquiryStatus = "received"
	InquiryStatusInProgress InquiryStatus = "in_progress"
	InquiryStatusResolved   InquiryStatus = "resolved"
)

// ValidInquiryStatus reports whether s is a recognized status value.
func ValidInquiryStatus(s InquiryStatus) bool {
	switch s {
	case InquiryStatusReceived, InquiryStatusInProgress, InquiryStatusResolved:
		return true
	}
	return false
}

// Inquiry is a contact-form submission. ReferenceID is opaque and
// server-generated; customers quote it for support correlation.
type Inquiry struct {
	ID                  int           `db:"id" json:"id"`
	FirstName           string        `db:"first_name" json:"firstName"`
	LastName            string        `db:"last_name" json:"lastName"`
	Email               string        `db:"email" json:"email"`
	Phone               *string       `db:"phone" json:"phone,omitempty"`
	Subject             string        `db:"subject" json:"subject"`
	Message             string        `db:"message" json:"message"`
	SubscribeNewsletter bool          `db:"subscribe_newsletter" json:"subscribeNewsletter"`
	ReferenceID         string        `db:"reference_id" json:"referenceId"`
	Status              InquiryStatus `db:"status" json:"status"`
	CreatedAt           time.Time     `db:"created_at" json:"submittedAt"`
	UpdatedAt           time.Time     `db:"updated_at" json:"updatedAt"`
}
