package health

import (
	"context"
	"database/sql"
	"time"
)

// Service reports process and database health.
type Service struct {
	DB *sql.DB
}

// New constructs a health service. DB may be nil when running on
// in-memory repositories.
func New(db *sql.DB) *Service {
	return &Service{DB: db}
}

// Status returns the current health snapshot.
func (s *Service) Status(ctx context.Context) map[string]any {
	out := map[string]any{
		"status": "ok",
		"ts":     time.Now().UTC().Format(time.RFC3339),
	}
	if s.DB == nil {
		out["database"] = "unconfigured"
		return out
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		out["status"] = "degraded"
		out["database"] = "unreachable"
		return out
	}
	out["database"] = "ok"
	return out
}
