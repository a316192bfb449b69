package analyses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"vastu-backend/internal/shared/util"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const analysisColumns = `id, user_id, created_at, updated_at, property_type, selected_goals, video_url, compass_heading, status, floor_plan, zones, summary, detailed_report`

// Create inserts a new analysis. The insert statement is built from the
// snake-cased, codec-encoded record; keys are sorted so generated SQL
// is deterministic.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	rec := analysis.record()
	if err := encodeStructured(rec); err != nil {
		return err
	}
	row := util.RecordToSnakeCase(rec)

	cols := sortedKeys(row)
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = row[col]
	}

	query := fmt.Sprintf(
		"INSERT INTO analyses (%s) VALUES (%s)",
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
	)
	_, err := r.DB.ExecContext(ctx, query, args...)
	return err
}

// GetByID returns the decoded analysis, or nil when no row matches.
func (r *PGRepo) GetByID(ctx context.Context, id string) (*Analysis, error) {
	query := fmt.Sprintf("SELECT %s FROM analyses WHERE id = $1 LIMIT 1", analysisColumns)
	analysis, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return analysis, nil
}

// Update applies the supplied fields only, stamps updated_at server-side
// and returns the refreshed record, or nil when no row matches. An empty
// update is a plain re-read.
func (r *PGRepo) Update(ctx context.Context, id string, upd AnalysisUpdate) (*Analysis, error) {
	rec := upd.record()
	if len(rec) == 0 {
		return r.GetByID(ctx, id)
	}
	if err := encodeStructured(rec); err != nil {
		return nil, err
	}
	row := util.RecordToSnakeCase(rec)

	cols := sortedKeys(row)
	sets := make([]string, 0, len(cols)+1)
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, row[col])
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE analyses SET %s WHERE id = $%d",
		strings.Join(sets, ", "),
		len(args),
	)
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// ListByUser returns the user's analyses, most recent first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Analysis, error) {
	query := fmt.Sprintf("SELECT %s FROM analyses WHERE user_id = $1 ORDER BY created_at DESC", analysisColumns)
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *analysis)
	}
	return out, rows.Err()
}

// Delete removes the row and reports whether one was actually removed.
func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM analyses WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanAnalysis reads one row and runs the structured columns through the
// codec's decode step.
func scanAnalysis(row rowScanner) (*Analysis, error) {
	var a Analysis
	var userID sql.NullString
	var goals, floorPlan, zones, summary, report sql.NullString

	if err := row.Scan(
		&a.ID,
		&userID,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.PropertyType,
		&goals,
		&a.VideoURL,
		&a.CompassHeading,
		&a.Status,
		&floorPlan,
		&zones,
		&summary,
		&report,
	); err != nil {
		return nil, err
	}
	if userID.Valid {
		a.UserID = userID.String
	}

	rec := map[string]any{}
	putIfValid(rec, "selectedGoals", goals)
	putIfValid(rec, "floorPlan", floorPlan)
	putIfValid(rec, "zones", zones)
	putIfValid(rec, "summary", summary)
	putIfValid(rec, "detailedReport", report)
	if err := decodeStructured(rec); err != nil {
		return nil, err
	}

	if v, ok := rec["selectedGoals"].([]string); ok {
		a.SelectedGoals = v
	}
	if v, ok := rec["floorPlan"].(*FloorPlan); ok {
		a.FloorPlan = v
	}
	if v, ok := rec["zones"].([]Zone); ok {
		a.Zones = v
	}
	if v, ok := rec["summary"].(*AnalysisSummary); ok {
		a.Summary = v
	}
	if v, ok := rec["detailedReport"].(*DetailedReport); ok {
		a.DetailedReport = v
	}
	return &a, nil
}

func putIfValid(rec map[string]any, field string, raw sql.NullString) {
	if raw.Valid {
		rec[field] = raw.String
	}
}

func sortedKeys(row map[string]any) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var _ Repo = (*PGRepo)(nil)
