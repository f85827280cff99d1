package model

import "gorm.io/gorm"

// AutoMigrate migrates every entity of the matching/booking core.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Participant{},
		&Appointment{},
		&Rating{},
		&Session{},
	)
}
