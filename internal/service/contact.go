package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mablo/mablo/internal/domain"
)

// DefaultSubmitDelay mimics the round trip of a real submission
const DefaultSubmitDelay = 1500 * time.Millisecond

// ContactService handles contact form submissions. There is no backend:
// a submission waits out a simulated delay and is kept in the local outbox.
type ContactService struct {
	store  domain.InquiryStore
	delay  time.Duration
	logger *slog.Logger

	// now and newID are replaced in tests
	now   func() time.Time
	newID func() string
}

// NewContactService creates a new contact service. store may be nil, in which
// case submissions are only logged.
func NewContactService(store domain.InquiryStore, delay time.Duration, logger *slog.Logger) *ContactService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactService{
		store:  store,
		delay:  max(delay, 0),
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Submit validates the form, waits for the simulated delay and records the inquiry
func (s *ContactService) Submit(ctx context.Context, form ContactForm) (domain.Inquiry, error) {
	if err := form.Validate(); err != nil {
		return domain.Inquiry{}, err
	}
	form = form.Normalize()

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return domain.Inquiry{}, ctx.Err()
		case <-timer.C:
		}
	}

	inq := domain.Inquiry{
		ID:          s.newID(),
		Name:        form.Name,
		Email:       form.Email,
		Message:     form.Message,
		SubmittedAt: s.now().UTC(),
	}

	if s.store != nil {
		if err := s.store.SaveInquiry(inq); err != nil {
			s.logger.Error("failed to store inquiry", "error", err, "inquiryID", inq.ID)
			return domain.Inquiry{}, fmt.Errorf("failed to store inquiry: %w", err)
		}
	}

	s.logger.Info("inquiry submitted", "inquiryID", inq.ID, "email", inq.Email, "messageLen", len(inq.Message))
	return inq, nil
}

// Inquiries lists the stored submissions, oldest first
func (s *ContactService) Inquiries() ([]domain.Inquiry, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.ListInquiries()
}
