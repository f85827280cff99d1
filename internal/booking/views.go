package booking

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Leganyst/meetpoint/internal/model"
)

// Derived appointment views for one participant. All are pure and recomputed
// on demand from the appointment set, never cached.

// Pending returns appointments touching the participant that still await a
// decision.
func Pending(participantID uuid.UUID, appts []model.Appointment) []model.Appointment {
	return filter(participantID, appts, func(a *model.Appointment) bool {
		return a.Status == model.AppointmentStatusPending
	})
}

// Upcoming returns confirmed appointments strictly in the future, soonest
// first.
func Upcoming(participantID uuid.UUID, appts []model.Appointment, now time.Time) []model.Appointment {
	out := filter(participantID, appts, func(a *model.Appointment) bool {
		return a.Status == model.AppointmentStatusConfirmed && a.StartsAt().After(now)
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartsAt().Before(out[j].StartsAt())
	})
	return out
}

// Completed returns completed appointments, most recent first.
func Completed(participantID uuid.UUID, appts []model.Appointment) []model.Appointment {
	out := filter(participantID, appts, func(a *model.Appointment) bool {
		return a.Status == model.AppointmentStatusCompleted
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartsAt().After(out[j].StartsAt())
	})
	return out
}

func filter(participantID uuid.UUID, appts []model.Appointment, keep func(*model.Appointment) bool) []model.Appointment {
	out := make([]model.Appointment, 0, len(appts))
	for i := range appts {
		a := &appts[i]
		if _, ok := a.Party(participantID); !ok {
			continue
		}
		if keep(a) {
			out = append(out, *a)
		}
	}
	return out
}
