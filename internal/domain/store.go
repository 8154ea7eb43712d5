package domain

// InquiryStore keeps submitted contact inquiries on this machine.
// Nothing is ever sent over the network.
type InquiryStore interface {
	// SaveInquiry stores an inquiry, replacing one with the same ID
	SaveInquiry(inq Inquiry) error

	// GetInquiry returns a stored inquiry by ID
	GetInquiry(id string) (Inquiry, error)

	// ListInquiries returns all inquiries, oldest first
	ListInquiries() ([]Inquiry, error)

	// DeleteInquiry removes an inquiry; deleting a missing ID is not an error
	DeleteInquiry(id string) error

	Close() error
}
