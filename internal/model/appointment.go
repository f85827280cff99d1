package model

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether the status is one of the four lifecycle states.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status admits no further transition.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// appointments
type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	RenterID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;index"`

	Date datatypes.Date `gorm:"type:date;not null"`
	// Time of day as HH:MM, validated at the boundary.
	Time string `gorm:"type:varchar(5);not null"`

	Status AppointmentStatus `gorm:"type:varchar(32);not null;index"`

	Service string `gorm:"type:varchar(255)"`
	Notes   string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// At most one rating per author role; once written, immutable.
	Ratings []Rating `gorm:"foreignKey:AppointmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Renter   *Participant `gorm:"foreignKey:RenterID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Provider *Participant `gorm:"foreignKey:ProviderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// StartsAt combines the calendar date and the HH:MM time of day into a single
// instant (UTC). Inputs are validated before an appointment is stored, so a
// malformed time simply collapses to midnight.
func (a *Appointment) StartsAt() time.Time {
	d := time.Time(a.Date)
	hour, min := 0, 0
	if len(a.Time) == 5 && a.Time[2] == ':' {
		if h, err := strconv.Atoi(a.Time[:2]); err == nil {
			hour = h
		}
		if m, err := strconv.Atoi(a.Time[3:]); err == nil {
			min = m
		}
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, time.UTC)
}

// RatingBy returns the rating authored by the given role, if present.
// The loaded Ratings association is consulted; no query is issued.
func (a *Appointment) RatingBy(role Role) *Rating {
	for i := range a.Ratings {
		if a.Ratings[i].AuthorRole == role {
			return &a.Ratings[i]
		}
	}
	return nil
}

// Party returns the role the participant plays on this appointment,
// or false if it is not a party at all.
func (a *Appointment) Party(participantID uuid.UUID) (Role, bool) {
	switch participantID {
	case a.RenterID:
		return RoleRenter, true
	case a.ProviderID:
		return RoleProvider, true
	}
	return "", false
}

// OtherParty returns the id of the counterpart of the given role.
func (a *Appointment) OtherParty(role Role) uuid.UUID {
	if role == RoleRenter {
		return a.ProviderID
	}
	return a.RenterID
}
