package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionRowID keys the single session row; this application has exactly one
// active participant per instance.
const SessionRowID int64 = 1

// Session is the persisted pointer to the currently active participant.
type Session struct {
	ID            int64      `gorm:"primaryKey"`
	ParticipantID *uuid.UUID `gorm:"type:uuid"`
	UpdatedAt     time.Time  `gorm:"not null"`

	Participant *Participant `gorm:"foreignKey:ParticipantID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// Active reports whether a participant is currently selected.
func (s *Session) Active() bool {
	return s != nil && s.ParticipantID != nil
}
