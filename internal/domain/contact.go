package domain

import "context"

// Field names as they appear in the request body and in the 422 error map.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Validation messages returned to the contact form.
const (
	ErrMsgName    = "Name is required"
	ErrMsgEmail   = "Valid email is required"
	ErrMsgMessage = "Message must be at least 10 characters"
)

// ContactSubmission represents one contact form payload. It only lives for
// the duration of a request.
type ContactSubmission struct {
	Name    string `json:"name" validate:"required,trimmed_min=2"`
	Email   string `json:"email" validate:"required,contact_email"`
	Message string `json:"message" validate:"required,trimmed_min=10"`
}

// NewContactSubmission extracts the three text fields from a decoded JSON
// body. Missing, null and non-string values become the empty string.
func NewContactSubmission(body map[string]any) *ContactSubmission {
	return &ContactSubmission{
		Name:    textField(body, FieldName),
		Email:   textField(body, FieldEmail),
		Message: textField(body, FieldMessage),
	}
}

func textField(body map[string]any, key string) string {
	s, _ := body[key].(string)
	return s
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission and relays it to the
	// site owner's mailbox.
	SendContactMessage(ctx context.Context, sub *ContactSubmission) error
}
