package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Leganyst/meetpoint/internal/model"
	"github.com/Leganyst/meetpoint/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql DB: %v", err)
	}
	// a single connection keeps the in-memory database alive and shared
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func seedParticipant(t *testing.T, db *gorm.DB, role model.Role, lat, lon float64) *model.Participant {
	t.Helper()

	p := &model.Participant{
		ID:        uuid.New(),
		FirstName: "Test",
		LastName:  string(role),
		Email:     string(role) + "@example.com",
		Role:      role,
		Location: model.Location{
			Latitude:    lat,
			Longitude:   lon,
			City:        "Paris",
			LastUpdated: time.Now().UTC().Add(-time.Hour),
		},
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed participant: %v", err)
	}
	return p
}

type fixture struct {
	db           *gorm.DB
	directory    *DirectoryService
	appointments *AppointmentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	participantRepo := repository.NewGormParticipantRepository(db)
	appointmentRepo := repository.NewGormAppointmentRepository(db)
	sessionRepo := repository.NewGormSessionRepository(db)
	log := zerolog.Nop()

	return &fixture{
		db:           db,
		directory:    NewDirectoryService(participantRepo, sessionRepo, log),
		appointments: NewAppointmentService(appointmentRepo, participantRepo, log),
	}
}

func (f *fixture) participant(t *testing.T, ctx context.Context, id uuid.UUID) *model.Participant {
	t.Helper()
	p, err := f.directory.GetParticipant(ctx, id)
	if err != nil {
		t.Fatalf("get participant: %v", err)
	}
	return p
}
