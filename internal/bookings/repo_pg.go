package bookings

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

const bookingColumns = `id, analysis_id, user_id, created_at, updated_at, name, email, phone, property_address, scheduled_time, timezone, payment_status, payment_id, amount, consultant_id, consultation_status, notes`

// Create inserts a new booking. The statement is built from the
// snake-cased record with sorted keys for deterministic SQL.
func (r *PGRepo) Create(ctx context.Context, booking Booking) error {
	row := util.RecordToSnakeCase(booking.record())

	cols := sortedKeys(row)
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = row[col]
	}

	query := fmt.Sprintf(
		"INSERT INTO bookings (%s) VALUES (%s)",
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
	)
	_, err := r.DB.ExecContext(ctx, query, args...)
	return err
}

// GetByID returns the booking, or nil when no row matches.
func (r *PGRepo) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := fmt.Sprintf("SELECT %s FROM bookings WHERE id = $1 LIMIT 1", bookingColumns)
	booking, err := scanBooking(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return booking, nil
}

// Update applies the supplied fields only, stamps updated_at server-side
// and returns the refreshed record, or nil when no row matches.
func (r *PGRepo) Update(ctx context.Context, id string, upd BookingUpdate) (*Booking, error) {
	row := util.RecordToSnakeCase(upd.record())
	if len(row) == 0 {
		return r.GetByID(ctx, id)
	}

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
		"UPDATE bookings SET %s WHERE id = $%d",
		strings.Join(sets, ", "),
		len(args),
	)
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// ListByEmail returns bookings for an email, most recent first.
func (r *PGRepo) ListByEmail(ctx context.Context, email string) ([]Booking, error) {
	query := fmt.Sprintf("SELECT %s FROM bookings WHERE email = $1 ORDER BY created_at DESC", bookingColumns)
	return r.list(ctx, query, email)
}

// ListByAnalysisID returns bookings for an analysis, most recent first.
func (r *PGRepo) ListByAnalysisID(ctx context.Context, analysisID string) ([]Booking, error) {
	query := fmt.Sprintf("SELECT %s FROM bookings WHERE analysis_id = $1 ORDER BY created_at DESC", bookingColumns)
	return r.list(ctx, query, analysisID)
}

func (r *PGRepo) list(ctx context.Context, query string, arg any) ([]Booking, error) {
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *booking)
	}
	return out, rows.Err()
}

// Delete removes the row and reports whether one was actually removed.
func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM bookings WHERE id = $1", id)
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

func scanBooking(row rowScanner) (*Booking, error) {
	var b Booking
	var userID, propertyAddress, paymentID, consultantID, notes sql.NullString

	if err := row.Scan(
		&b.ID,
		&b.AnalysisID,
		&userID,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.Name,
		&b.Email,
		&b.Phone,
		&propertyAddress,
		&b.ScheduledTime,
		&b.Timezone,
		&b.PaymentStatus,
		&paymentID,
		&b.Amount,
		&consultantID,
		&b.ConsultationStatus,
		&notes,
	); err != nil {
		return nil, err
	}
	if userID.Valid {
		b.UserID = userID.String
	}
	if propertyAddress.Valid {
		b.PropertyAddress = propertyAddress.String
	}
	if paymentID.Valid {
		b.PaymentID = paymentID.String
	}
	if consultantID.Valid {
		b.ConsultantID = consultantID.String
	}
	if notes.Valid {
		b.Notes = notes.String
	}
	return &b, nil
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
