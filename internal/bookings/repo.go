package bookings

import "context"

// Repo defines persistence operations for bookings. Reads and updates
// report a missing record as a nil result, not an error; Delete reports
// whether a row was actually removed.
type Repo interface {
	Create(ctx context.Context, booking Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	Update(ctx context.Context, id string, upd BookingUpdate) (*Booking, error)
	ListByEmail(ctx context.Context, email string) ([]Booking, error)
	ListByAnalysisID(ctx context.Context, analysisID string) ([]Booking, error)
	Delete(ctx context.Context, id string) (bool, error)
}
