package domain

import "time"

// Inquiry is a contact form submission
type Inquiry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// FieldError describes a single invalid contact form field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every invalid field of a submission
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return e.Fields[0].Field + ": " + e.Fields[0].Message
	}
	return "invalid contact form"
}

// Is lets errors.Is match ErrInvalidInquiry
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInquiry
}

// Message returns the error for field, or "" if the field is valid
func (e *ValidationError) Message(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}
