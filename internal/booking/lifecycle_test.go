package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Leganyst/meetpoint/internal/model"
)

func appointmentAt(status model.AppointmentStatus, date string, timeOfDay string) *model.Appointment {
	d, err := ParseDate(date)
	if err != nil {
		panic(err)
	}
	return &model.Appointment{
		ID:         uuid.New(),
		RenterID:   uuid.New(),
		ProviderID: uuid.New(),
		Date:       d,
		Time:       timeOfDay,
		Status:     status,
	}
}

func TestTransition_PendingConfirmedByProvider(t *testing.T) {
	a := appointmentAt(model.AppointmentStatusPending, "2026-09-10", "14:00")
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	if err := Transition(a, model.RoleProvider, model.AppointmentStatusConfirmed, now); err != nil {
		t.Fatalf("provider confirm: %v", err)
	}
	if err := Transition(a, model.RoleRenter, model.AppointmentStatusConfirmed, now); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("renter confirm: expected ErrPermissionDenied, got %v", err)
	}
}

func TestTransition_CancelFromPendingAndConfirmed(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	for _, from := range []model.AppointmentStatus{
		model.AppointmentStatusPending,
		model.AppointmentStatusConfirmed,
	} {
		for _, actor := range []model.Role{model.RoleRenter, model.RoleProvider} {
			a := appointmentAt(from, "2026-09-10", "14:00")
			if err := Transition(a, actor, model.AppointmentStatusCancelled, now); err != nil {
				t.Fatalf("cancel from %s as %s: %v", from, actor, err)
			}
		}
	}
}

func TestTransition_TerminalStatesAdmitNothing(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	targets := []model.AppointmentStatus{
		model.AppointmentStatusPending,
		model.AppointmentStatusConfirmed,
		model.AppointmentStatusCompleted,
		model.AppointmentStatusCancelled,
	}

	for _, from := range []model.AppointmentStatus{
		model.AppointmentStatusCompleted,
		model.AppointmentStatusCancelled,
	} {
		for _, to := range targets {
			a := appointmentAt(from, "2020-01-01", "10:00")
			err := Transition(a, model.RoleProvider, to, now)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("%s -> %s: expected ErrInvalidTransition, got %v", from, to, err)
			}
		}
	}
}

func TestTransition_ConfirmedAlreadyConfirmed(t *testing.T) {
	a := appointmentAt(model.AppointmentStatusConfirmed, "2026-09-10", "14:00")
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	err := Transition(a, model.RoleRenter, model.AppointmentStatusConfirmed, now)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestTransition_CompleteGates(t *testing.T) {
	now := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)

	past := appointmentAt(model.AppointmentStatusConfirmed, "2026-09-05", "10:00")
	if err := Transition(past, model.RoleProvider, model.AppointmentStatusCompleted, now); err != nil {
		t.Fatalf("complete past appointment: %v", err)
	}

	future := appointmentAt(model.AppointmentStatusConfirmed, "2026-09-05", "18:00")
	if err := Transition(future, model.RoleProvider, model.AppointmentStatusCompleted, now); !errors.Is(err, ErrNotElapsed) {
		t.Fatalf("complete future appointment: expected ErrNotElapsed, got %v", err)
	}

	if err := Transition(past, model.RoleRenter, model.AppointmentStatusCompleted, now); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("renter complete: expected ErrPermissionDenied, got %v", err)
	}

	pending := appointmentAt(model.AppointmentStatusPending, "2026-09-05", "10:00")
	if err := Transition(pending, model.RoleProvider, model.AppointmentStatusCompleted, now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("pending -> completed: expected ErrInvalidTransition, got %v", err)
	}
}

func TestCanRate(t *testing.T) {
	a := appointmentAt(model.AppointmentStatusConfirmed, "2026-09-05", "10:00")
	if err := CanRate(a, model.RoleRenter); !errors.Is(err, ErrNotCompleted) {
		t.Fatalf("expected ErrNotCompleted, got %v", err)
	}

	a.Status = model.AppointmentStatusCompleted
	if err := CanRate(a, model.RoleRenter); err != nil {
		t.Fatalf("empty slot: %v", err)
	}

	a.Ratings = append(a.Ratings, model.Rating{
		AppointmentID: a.ID,
		AuthorRole:    model.RoleRenter,
		AuthorID:      a.RenterID,
		Score:         5,
	})
	if err := CanRate(a, model.RoleRenter); !errors.Is(err, ErrAlreadyRated) {
		t.Fatalf("filled slot: expected ErrAlreadyRated, got %v", err)
	}
	// the other slot stays open
	if err := CanRate(a, model.RoleProvider); err != nil {
		t.Fatalf("other slot: %v", err)
	}
}

func TestStartsAt(t *testing.T) {
	a := appointmentAt(model.AppointmentStatusPending, "2026-09-05", "14:30")
	want := time.Date(2026, 9, 5, 14, 30, 0, 0, time.UTC)
	if got := a.StartsAt(); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// malformed time collapses to midnight instead of failing
	a.Time = "xx"
	want = time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	if got := a.StartsAt(); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
