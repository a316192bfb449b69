package analyses

import "context"

// Repo defines persistence operations for analyses. Reads and updates
// report a missing record as a nil result, not an error; Delete reports
// whether a row was actually removed.
type Repo interface {
	Create(ctx context.Context, analysis Analysis) error
	GetByID(ctx context.Context, id string) (*Analysis, error)
	Update(ctx context.Context, id string, upd AnalysisUpdate) (*Analysis, error)
	ListByUser(ctx context.Context, userID string) ([]Analysis, error)
	Delete(ctx context.Context, id string) (bool, error)
}
