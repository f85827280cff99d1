package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/Leganyst/meetpoint/internal/geo"
)

// Role of a participant in the directory.
type Role string

const (
	RoleRenter   Role = "renter"
	RoleProvider Role = "provider"
)

// Valid reports whether the role is one of the two known variants.
func (r Role) Valid() bool {
	return r == RoleRenter || r == RoleProvider
}

// Opposite returns the counterpart role.
func (r Role) Opposite() Role {
	if r == RoleRenter {
		return RoleProvider
	}
	return RoleRenter
}

// Location is the last known position of a participant, embedded into the
// participants table with the location_ prefix.
type Location struct {
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
	City      string  `gorm:"type:varchar(255)"`
	Address   string  `gorm:"type:varchar(255)"`
	// deliberately not named UpdatedAt: gorm would auto-touch it on every
	// write and defeat the stale-sample guard
	LastUpdated time.Time `gorm:"index"`
}

// participants
type Participant struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	FirstName string `gorm:"type:varchar(255);not null"`
	LastName  string `gorm:"type:varchar(255);not null"`
	Email     string `gorm:"type:varchar(255);not null"`
	Phone     string `gorm:"type:varchar(32)"`

	Role Role `gorm:"type:varchar(16);not null;index"`

	Location Location `gorm:"embedded;embeddedPrefix:location_"`

	// Running aggregate, recomputed from the appointment set on every
	// rating submission. One decimal, 0 when the participant has no ratings.
	Rating                float64 `gorm:"not null;default:0"`
	CompletedAppointments int     `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Coordinate implements geo.Located.
func (l Location) Coordinate() geo.Coordinate {
	return geo.Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

// Coordinate implements geo.Located.
func (p Participant) Coordinate() geo.Coordinate {
	return p.Location.Coordinate()
}

// FullName joins the display name parts.
func (p *Participant) FullName() string {
	return p.FirstName + " " + p.LastName
}
