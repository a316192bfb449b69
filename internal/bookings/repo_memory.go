package bookings

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo, used when no
// database is configured and in tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Booking
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Booking)}
}

// Create stores the booking.
func (r *MemoryRepo) Create(ctx context.Context, booking Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[booking.ID] = booking
	return nil
}

// GetByID returns a copy of the booking, or nil when absent.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (*Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	booking, ok := r.data[id]
	if !ok {
		return nil, nil
	}
	return &booking, nil
}

// Update applies the supplied fields and refreshes updated_at, or
// returns nil when absent.
func (r *MemoryRepo) Update(ctx context.Context, id string, upd BookingUpdate) (*Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.data[id]
	if !ok {
		return nil, nil
	}
	if len(upd.record()) == 0 {
		return &booking, nil
	}
	upd.apply(&booking)
	booking.UpdatedAt = time.Now().UTC()
	r.data[id] = booking
	return &booking, nil
}

// ListByEmail returns bookings for an email, most recent first.
func (r *MemoryRepo) ListByEmail(ctx context.Context, email string) ([]Booking, error) {
	return r.filter(ctx, func(b Booking) bool {
		return strings.EqualFold(b.Email, email)
	})
}

// ListByAnalysisID returns bookings for an analysis, most recent first.
func (r *MemoryRepo) ListByAnalysisID(ctx context.Context, analysisID string) ([]Booking, error) {
	return r.filter(ctx, func(b Booking) bool {
		return b.AnalysisID == analysisID
	})
}

func (r *MemoryRepo) filter(ctx context.Context, keep func(Booking) bool) ([]Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Booking
	for _, booking := range r.data {
		if keep(booking) {
			out = append(out, booking)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes the booking and reports whether it existed.
func (r *MemoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return false, nil
	}
	delete(r.data, id)
	return true, nil
}

var _ Repo = (*MemoryRepo)(nil)
