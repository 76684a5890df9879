package domain

import (
	"context"
	"errors"
	"time"
)

// Field names of a contact submission, as used in JSON payloads, HTML forms and error maps.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldServiceInterest = "serviceInterest"
	FieldMessage         = "message"
	FieldConsentGiven    = "consentGiven"
)

var (
	ErrEmailNotConfigured = errors.New("email service is not configured")
	ErrSendFailed         = errors.New("inquiry could not be delivered")
)

// ContactSubmission represents a contact form submission
type ContactSubmission struct {
	Name            string `json:"name" form:"name" validate:"notblank"`
	Email           string `json:"email" form:"email" validate:"notblank,contact_email"`
	Phone           string `json:"phone" form:"phone"`
	ServiceInterest string `json:"serviceInterest" form:"serviceInterest" validate:"service_id"`
	Message         string `json:"message" form:"message" validate:"notblank"`
	ConsentGiven    bool   `json:"consentGiven" form:"consentGiven" validate:"required"`
}

// ValidationErrors maps a submission field name to a user facing message.
// An empty map means the submission is valid.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	return "contact submission is invalid"
}

// Inquiry is a validated, sanitised submission on its way to the office inbox
type Inquiry struct {
	ReferenceID  string
	Submission   ContactSubmission
	ServiceTitle string // Resolved from the catalog, empty when no service was picked
	ReceivedAt   time.Time
}

// InquiryReceipt is returned to the caller once an inquiry has been delivered
type InquiryReceipt struct {
	ReferenceID string    `json:"referenceId"`
	ReceivedAt  time.Time `json:"receivedAt"`
}

// InquirySender delivers an inquiry to whoever answers it
type InquirySender interface {
	SendInquiry(ctx context.Context, inquiry *Inquiry) error
	IsConfigured() bool
}

// InquiryRepository keeps a record of delivered inquiries
type InquiryRepository interface {
	Save(ctx context.Context, inquiry *Inquiry) error
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Validate checks a submission without sending it
	Validate(sub *ContactSubmission) ValidationErrors
	// SendContactMessage validates and sends a contact form message
	SendContactMessage(ctx context.Context, sub *ContactSubmission) (*InquiryReceipt, error)
}
