package bookings

import "time"

// Payment status values.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Consultation status values.
const (
	ConsultationScheduled = "scheduled"
	ConsultationCompleted = "completed"
	ConsultationCancelled = "cancelled"
)

// Booking represents a scheduled consultation tied to one analysis.
// AnalysisID is a weak reference; the caller supplies a valid id.
type Booking struct {
	ID         string    `json:"id"`
	AnalysisID string    `json:"analysisId"`
	UserID     string    `json:"userId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	PropertyAddress string `json:"propertyAddress,omitempty"`

	ScheduledTime time.Time `json:"scheduledTime"`
	Timezone      string    `json:"timezone"`

	PaymentStatus string `json:"paymentStatus"`
	PaymentID     string `json:"paymentId,omitempty"`
	Amount        int64  `json:"amount"` // minor currency units

	ConsultantID       string `json:"consultantId,omitempty"`
	ConsultationStatus string `json:"consultationStatus"`
	Notes              string `json:"notes,omitempty"`
}

// BookingInsert is the caller-supplied portion of a new booking.
type BookingInsert struct {
	AnalysisID      string `json:"analysisId"`
	UserID          string `json:"userId,omitempty"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	PropertyAddress string `json:"propertyAddress,omitempty"`

	ScheduledTime time.Time `json:"scheduledTime"`
	Timezone      string    `json:"timezone"`

	PaymentStatus string `json:"paymentStatus,omitempty"`
	PaymentID     string `json:"paymentId,omitempty"`
	Amount        int64  `json:"amount"`

	ConsultantID       string `json:"consultantId,omitempty"`
	ConsultationStatus string `json:"consultationStatus,omitempty"`
	Notes              string `json:"notes,omitempty"`
}

// BookingUpdate is a partial update: nil fields are left untouched.
type BookingUpdate struct {
	AnalysisID      *string `json:"analysisId,omitempty"`
	UserID          *string `json:"userId,omitempty"`
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	PropertyAddress *string `json:"propertyAddress,omitempty"`

	ScheduledTime *time.Time `json:"scheduledTime,omitempty"`
	Timezone      *string    `json:"timezone,omitempty"`

	PaymentStatus *string `json:"paymentStatus,omitempty"`
	PaymentID     *string `json:"paymentId,omitempty"`
	Amount        *int64  `json:"amount,omitempty"`

	ConsultantID       *string `json:"consultantId,omitempty"`
	ConsultationStatus *string `json:"consultationStatus,omitempty"`
	Notes              *string `json:"notes,omitempty"`
}

// record flattens the supplied fields into a camelCase record for the
// converter pipeline. Absent fields stay absent.
func (u BookingUpdate) record() map[string]any {
	rec := map[string]any{}
	put := func(key string, v *string) {
		if v != nil {
			rec[key] = *v
		}
	}
	put("analysisId", u.AnalysisID)
	put("userId", u.UserID)
	put("name", u.Name)
	put("email", u.Email)
	put("phone", u.Phone)
	put("propertyAddress", u.PropertyAddress)
	put("timezone", u.Timezone)
	put("paymentStatus", u.PaymentStatus)
	put("paymentId", u.PaymentID)
	put("consultantId", u.ConsultantID)
	put("consultationStatus", u.ConsultationStatus)
	put("notes", u.Notes)
	if u.ScheduledTime != nil {
		rec["scheduledTime"] = *u.ScheduledTime
	}
	if u.Amount != nil {
		rec["amount"] = *u.Amount
	}
	return rec
}

// apply copies the supplied fields onto b.
func (u BookingUpdate) apply(b *Booking) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&b.AnalysisID, u.AnalysisID)
	set(&b.UserID, u.UserID)
	set(&b.Name, u.Name)
	set(&b.Email, u.Email)
	set(&b.Phone, u.Phone)
	set(&b.PropertyAddress, u.PropertyAddress)
	set(&b.Timezone, u.Timezone)
	set(&b.PaymentStatus, u.PaymentStatus)
	set(&b.PaymentID, u.PaymentID)
	set(&b.ConsultantID, u.ConsultantID)
	set(&b.ConsultationStatus, u.ConsultationStatus)
	set(&b.Notes, u.Notes)
	if u.ScheduledTime != nil {
		b.ScheduledTime = *u.ScheduledTime
	}
	if u.Amount != nil {
		b.Amount = *u.Amount
	}
}

// record flattens a full booking into a camelCase record for insert.
func (b Booking) record() map[string]any {
	rec := map[string]any{
		"id":                 b.ID,
		"analysisId":         b.AnalysisID,
		"createdAt":          b.CreatedAt,
		"updatedAt":          b.UpdatedAt,
		"name":               b.Name,
		"email":              b.Email,
		"phone":              b.Phone,
		"scheduledTime":      b.ScheduledTime,
		"timezone":           b.Timezone,
		"paymentStatus":      b.PaymentStatus,
		"amount":             b.Amount,
		"consultationStatus": b.ConsultationStatus,
	}
	if b.UserID != "" {
		rec["userId"] = b.UserID
	}
	if b.PropertyAddress != "" {
		rec["propertyAddress"] = b.PropertyAddress
	}
	if b.PaymentID != "" {
		rec["paymentId"] = b.PaymentID
	}
	if b.ConsultantID != "" {
		rec["consultantId"] = b.ConsultantID
	}
	if b.Notes != "" {
		rec["notes"] = b.Notes
	}
	return rec
}
