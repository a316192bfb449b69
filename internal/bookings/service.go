package bookings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for bookings.
type Service struct {
	Repo Repo
}

// Create assigns a fresh id, equal creation/update timestamps and
// status defaults, persists the record and returns the re-read result.
// The analysis reference is taken on trust; referential integrity is
// the caller's responsibility.
func (s *Service) Create(ctx context.Context, input BookingInsert) (Booking, error) {
	if strings.TrimSpace(input.AnalysisID) == "" ||
		strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Phone) == "" {
		return Booking{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = PaymentPending
	}
	consultationStatus := input.ConsultationStatus
	if consultationStatus == "" {
		consultationStatus = ConsultationScheduled
	}

	booking := Booking{
		ID:                 uuid.NewString(),
		AnalysisID:         input.AnalysisID,
		UserID:             input.UserID,
		CreatedAt:          now,
		UpdatedAt:          now,
		Name:               input.Name,
		Email:              input.Email,
		Phone:              input.Phone,
		PropertyAddress:    input.PropertyAddress,
		ScheduledTime:      input.ScheduledTime,
		Timezone:           input.Timezone,
		PaymentStatus:      paymentStatus,
		PaymentID:          input.PaymentID,
		Amount:             input.Amount,
		ConsultantID:       input.ConsultantID,
		ConsultationStatus: consultationStatus,
		Notes:              input.Notes,
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		return Booking{}, err
	}

	created, err := s.Repo.GetByID(ctx, booking.ID)
	if err != nil {
		return Booking{}, err
	}
	if created == nil {
		return Booking{}, fmt.Errorf("booking %s: %w", booking.ID, ErrCreateReadback)
	}
	return *created, nil
}

// GetByID returns the booking, or nil when it does not exist.
func (s *Service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

// Update applies a partial update and returns the refreshed record, or
// nil when the booking does not exist.
func (s *Service) Update(ctx context.Context, id string, upd BookingUpdate) (*Booking, error) {
	return s.Repo.Update(ctx, id, upd)
}

// ListByEmail returns bookings for an email, most recent first.
func (s *Service) ListByEmail(ctx context.Context, email string) ([]Booking, error) {
	return s.Repo.ListByEmail(ctx, email)
}

// ListByAnalysisID returns bookings for an analysis, most recent first.
func (s *Service) ListByAnalysisID(ctx context.Context, analysisID string) ([]Booking, error) {
	return s.Repo.ListByAnalysisID(ctx, analysisID)
}

// Delete removes the booking and reports whether a row was removed.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.Repo.Delete(ctx, id)
}
