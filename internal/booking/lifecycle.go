package booking

import (
	"time"

	"github.com/Leganyst/meetpoint/internal/model"
)

// Transition checks the role-gated status table:
//
//	pending   -> confirmed   provider only
//	pending   -> cancelled   either party
//	confirmed -> cancelled   either party
//	confirmed -> completed   provider only, once the appointment time passed
//
// completed and cancelled are terminal. actor is the role the acting
// participant plays on the appointment; now anchors the elapsed-time check
// for completion.
func Transition(a *model.Appointment, actor model.Role, to model.AppointmentStatus, now time.Time) error {
	switch a.Status {
	case model.AppointmentStatusPending:
		switch to {
		case model.AppointmentStatusConfirmed:
			if actor != model.RoleProvider {
				return ErrPermissionDenied
			}
			return nil
		case model.AppointmentStatusCancelled:
			return nil
		}

	case model.AppointmentStatusConfirmed:
		switch to {
		case model.AppointmentStatusCancelled:
			return nil
		case model.AppointmentStatusCompleted:
			if actor != model.RoleProvider {
				return ErrPermissionDenied
			}
			if a.StartsAt().After(now) {
				return ErrNotElapsed
			}
			return nil
		}
	}

	return ErrInvalidTransition
}

// CanRate checks that the appointment is completed and the author's slot is
// still empty. The rating itself targets the opposite party.
func CanRate(a *model.Appointment, author model.Role) error {
	if a.Status != model.AppointmentStatusCompleted {
		return ErrNotCompleted
	}
	if a.RatingBy(author) != nil {
		return ErrAlreadyRated
	}
	return nil
}
