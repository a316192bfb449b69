package bookings

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestService() *Service {
	return &Service{Repo: NewMemoryRepo()}
}

func validInsert() BookingInsert {
	return BookingInsert{
		AnalysisID:    "analysis-1",
		Name:          "Priya Sharma",
		Email:         "priya@example.com",
		Phone:         "+91-9876543210",
		ScheduledTime: time.Date(2025, 6, 5, 10, 30, 0, 0, time.UTC),
		Timezone:      "Asia/Kolkata",
		Amount:        299900,
	}
}

func TestServiceCreateAssignsDefaults(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), validInsert())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if created.PaymentStatus != PaymentPending {
		t.Fatalf("PaymentStatus = %q, want %q", created.PaymentStatus, PaymentPending)
	}
	if created.ConsultationStatus != ConsultationScheduled {
		t.Fatalf("ConsultationStatus = %q, want %q", created.ConsultationStatus, ConsultationScheduled)
	}
	if created.Amount != 299900 {
		t.Fatalf("Amount = %d, want 299900", created.Amount)
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("createdAt %v != updatedAt %v", created.CreatedAt, created.UpdatedAt)
	}
}

func TestServiceCreateRejectsMissingFields(t *testing.T) {
	svc := newTestService()

	cases := map[string]func(*BookingInsert){
		"analysisId": func(in *BookingInsert) { in.AnalysisID = "" },
		"name":       func(in *BookingInsert) { in.Name = " " },
		"email":      func(in *BookingInsert) { in.Email = "" },
		"phone":      func(in *BookingInsert) { in.Phone = "" },
	}
	for field, blank := range cases {
		input := validInsert()
		blank(&input)
		if _, err := svc.Create(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("missing %s: err = %v, want ErrInvalidInput", field, err)
		}
	}
}

func TestServiceUpdatePaymentStatus(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validInsert())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	paymentStatus := PaymentCompleted
	paymentID := "pay_123"
	updated, err := svc.Update(ctx, created.ID, BookingUpdate{
		PaymentStatus: &paymentStatus,
		PaymentID:     &paymentID,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated == nil || updated.PaymentStatus != PaymentCompleted || updated.PaymentID != "pay_123" {
		t.Fatalf("updated = %#v", updated)
	}
	if updated.Name != created.Name || updated.Amount != created.Amount {
		t.Fatalf("untouched fields changed: %#v", updated)
	}
}

func TestServiceUpdateMissingReturnsNil(t *testing.T) {
	svc := newTestService()
	notes := "reschedule requested"
	updated, err := svc.Update(context.Background(), "missing", BookingUpdate{Notes: &notes})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated != nil {
		t.Fatalf("expected nil for missing id, got %#v", updated)
	}
}

func TestServiceListFilters(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, validInsert())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	other := validInsert()
	other.AnalysisID = "analysis-2"
	other.Email = "Other@Example.com"
	if _, err := svc.Create(ctx, other); err != nil {
		t.Fatalf("Create other: %v", err)
	}

	// Email matching is case-insensitive.
	byEmail, err := svc.ListByEmail(ctx, "other@example.com")
	if err != nil {
		t.Fatalf("ListByEmail: %v", err)
	}
	if len(byEmail) != 1 || byEmail[0].AnalysisID != "analysis-2" {
		t.Fatalf("byEmail = %#v", byEmail)
	}

	byAnalysis, err := svc.ListByAnalysisID(ctx, "analysis-1")
	if err != nil {
		t.Fatalf("ListByAnalysisID: %v", err)
	}
	if len(byAnalysis) != 1 || byAnalysis[0].ID != first.ID {
		t.Fatalf("byAnalysis = %#v", byAnalysis)
	}
}

func TestServiceDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validInsert())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	deleted, err := svc.Delete(ctx, created.ID)
	if err != nil || !deleted {
		t.Fatalf("Delete = %v, %v; want true, nil", deleted, err)
	}
	deleted, err = svc.Delete(ctx, created.ID)
	if err != nil || deleted {
		t.Fatalf("second Delete = %v, %v; want false, nil", deleted, err)
	}
}
