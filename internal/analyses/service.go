package analyses

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for analyses.
type Service struct {
	Repo Repo
}

// Create assigns a fresh id and equal creation/update timestamps,
// persists the record and returns the freshly re-read, decoded result.
// A missing read-back is reported as ErrCreateReadback.
func (s *Service) Create(ctx context.Context, input AnalysisInsert) (Analysis, error) {
	if strings.TrimSpace(input.PropertyType) == "" || strings.TrimSpace(input.VideoURL) == "" {
		return Analysis{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	status := input.Status
	if status == "" {
		status = StatusUploading
	}

	analysis := Analysis{
		ID:             uuid.NewString(),
		UserID:         input.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
		PropertyType:   input.PropertyType,
		SelectedGoals:  input.SelectedGoals,
		VideoURL:       input.VideoURL,
		CompassHeading: input.CompassHeading,
		Status:         status,
		FloorPlan:      input.FloorPlan,
		Zones:          input.Zones,
		Summary:        input.Summary,
		DetailedReport: input.DetailedReport,
	}

	if err := s.Repo.Create(ctx, analysis); err != nil {
		return Analysis{}, err
	}

	created, err := s.Repo.GetByID(ctx, analysis.ID)
	if err != nil {
		return Analysis{}, err
	}
	if created == nil {
		return Analysis{}, fmt.Errorf("analysis %s: %w", analysis.ID, ErrCreateReadback)
	}
	return *created, nil
}

// GetByID returns the analysis, or nil when it does not exist.
func (s *Service) GetByID(ctx context.Context, id string) (*Analysis, error) {
	return s.Repo.GetByID(ctx, id)
}

// Update applies a partial update and returns the refreshed record, or
// nil when the analysis does not exist.
func (s *Service) Update(ctx context.Context, id string, upd AnalysisUpdate) (*Analysis, error) {
	return s.Repo.Update(ctx, id, upd)
}

// ListByUser returns the user's analyses, most recent first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Analysis, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Delete removes the analysis and reports whether a row was removed.
// Bookings referencing it are left alone; cleanup is the caller's call.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.Repo.Delete(ctx, id)
}
