package tui

import (
	"time"

	"github.com/mablo/mablo/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message. Seq guards against clearing
// a newer message than the one that scheduled it.
type ClearStatusMsg struct {
	Seq int
}

// frameMsg drives one animation frame
type frameMsg struct {
	At time.Time
}

// ScrollToMsg asks the page to glide to a section
type ScrollToMsg struct {
	Section domain.SectionID
}

// InquirySubmittedMsg reports the outcome of a contact form submission
type InquirySubmittedMsg struct {
	Inquiry domain.Inquiry
	Err     error
}

// ShowHelpMsg toggles the help overlay
type ShowHelpMsg struct{}
