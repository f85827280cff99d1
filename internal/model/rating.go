package model

import (
	"time"

	"github.com/google/uuid"
)

// Rating is one filled rating slot. The unique index on
// (appointment_id, author_role) makes a slot write-once at the storage level
// as well as in the service layer.
type Rating struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	AppointmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rating_slot,priority:1"`

	// Role of the author on the appointment. A renter-authored rating is
	// about the provider and vice versa.
	AuthorRole Role      `gorm:"type:varchar(16);not null;uniqueIndex:idx_rating_slot,priority:2"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null"`

	Score   int    `gorm:"not null"`
	Comment string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
}
