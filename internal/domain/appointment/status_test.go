package appointment

import (
	"testing"
	"time"

	"github.com/mmanuelaprado/pradoagenda-sub000/internal/httperr"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/models"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
	}
	for _, tc := range allowed {
		if err := CanTransition(tc.from, tc.to); err != nil {
			t.Fatalf("expected %s -> %s to be allowed, got %v", tc.from, tc.to, err)
		}
	}

	denied := []struct{ from, to Status }{
		{StatusPending, StatusCompleted},
		{StatusCancelled, StatusConfirmed},
		{StatusCancelled, StatusCompleted},
		{StatusCompleted, StatusCancelled},
		{StatusCompleted, StatusPending},
		{StatusConfirmed, StatusPending},
	}
	for _, tc := range denied {
		if err := CanTransition(tc.from, tc.to); !httperr.IsBusiness(err, "invalid_transition") {
			t.Fatalf("expected %s -> %s to be rejected, got %v", tc.from, tc.to, err)
		}
	}
}

func TestIsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
		if !IsValid(s) {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if IsValid(Status("rescheduled")) {
		t.Fatalf("expected unknown status to be invalid")
	}
}

func TestConfirmCancelComplete(t *testing.T) {
	now := time.Date(2030, time.June, 3, 10, 0, 0, 0, time.Local)

	ap := &models.Appointment{Status: string(StatusPending)}
	if err := Confirm(ap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusConfirmed) {
		t.Fatalf("expected confirmed, got %s", ap.Status)
	}

	if err := Complete(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusCompleted) || ap.CompletedAt == nil || !ap.CompletedAt.Equal(now) {
		t.Fatalf("expected completed at %v, got %s / %v", now, ap.Status, ap.CompletedAt)
	}

	// Terminal: nada mais muda.
	if err := Cancel(ap, now); !httperr.IsBusiness(err, "invalid_transition") {
		t.Fatalf("expected invalid_transition, got %v", err)
	}
	if ap.Status != string(StatusCompleted) || ap.CancelledAt != nil {
		t.Fatalf("expected appointment untouched after rejected transition")
	}

	ap = &models.Appointment{Status: string(StatusPending)}
	if err := Cancel(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusCancelled) || ap.CancelledAt == nil {
		t.Fatalf("expected cancelled with timestamp, got %s / %v", ap.Status, ap.CancelledAt)
	}
}

func TestApplyVisit(t *testing.T) {
	first := time.Date(2030, time.June, 3, 10, 0, 0, 0, time.Local)

	created := ApplyVisit(nil, 7, "Maria Silva", "11988887777", first)
	if created.ProfessionalID != 7 || created.Name != "Maria Silva" || created.Phone != "11988887777" {
		t.Fatalf("unexpected new client: %+v", created)
	}
	if created.TotalBookings != 1 || !created.LastVisit.Equal(first) {
		t.Fatalf("expected first visit counted, got %+v", created)
	}

	second := first.Add(48 * time.Hour)
	updated := ApplyVisit(&created, 7, "M. Silva", "11988887777", second)
	if updated.TotalBookings != 2 {
		t.Fatalf("expected 2 bookings, got %d", updated.TotalBookings)
	}
	if updated.Name != "Maria Silva" {
		t.Fatalf("expected original name kept, got %s", updated.Name)
	}
	if !updated.LastVisit.Equal(second) {
		t.Fatalf("expected last visit updated, got %v", updated.LastVisit)
	}

	// O cliente original passado por ponteiro não pode ser mutado.
	if created.TotalBookings != 1 {
		t.Fatalf("expected input client untouched, got %d bookings", created.TotalBookings)
	}
}
