package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrInvalidInquiry indicates a contact submission failed validation
	ErrInvalidInquiry = errors.New("contact inquiry is invalid")

	// ErrInquiryNotFound indicates the requested inquiry does not exist
	ErrInquiryNotFound = errors.New("inquiry not found")

	// ErrStoreClosed indicates the inquiry store was used after Close
	ErrStoreClosed = errors.New("inquiry store is closed")

	// ErrUnknownSection indicates a section name could not be resolved
	ErrUnknownSection = errors.New("unknown page section")
)
