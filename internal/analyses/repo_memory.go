package analyses

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo, used when no
// database is configured and in tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Analysis
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Analysis)}
}

// Create stores the analysis.
func (r *MemoryRepo) Create(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[analysis.ID] = analysis
	return nil
}

// GetByID returns a copy of the analysis, or nil when absent.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (*Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.data[id]
	if !ok {
		return nil, nil
	}
	return &analysis, nil
}

// Update applies the supplied fields and refreshes updated_at, or
// returns nil when absent. An empty update is a plain re-read.
func (r *MemoryRepo) Update(ctx context.Context, id string, upd AnalysisUpdate) (*Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	analysis, ok := r.data[id]
	if !ok {
		return nil, nil
	}
	if len(upd.record()) == 0 {
		return &analysis, nil
	}
	upd.apply(&analysis)
	analysis.UpdatedAt = time.Now().UTC()
	r.data[id] = analysis
	return &analysis, nil
}

// ListByUser returns the user's analyses, most recent first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Analysis
	for _, analysis := range r.data {
		if analysis.UserID == userID {
			out = append(out, analysis)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes the analysis and reports whether it existed.
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
