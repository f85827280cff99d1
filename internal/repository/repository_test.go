package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Leganyst/meetpoint/internal/model"
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
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func TestParticipantRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormParticipantRepository(db)
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.UpdateAggregate(ctx, uuid.New(), 4.5, 3); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update aggregate: expected ErrNotFound, got %v", err)
	}
	if err := repo.UpdateLocation(ctx, uuid.New(), model.Location{LastUpdated: time.Now()}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update location: expected ErrNotFound, got %v", err)
	}
}

func TestParticipantRepository_ReadYourWrites(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormParticipantRepository(db)
	ctx := context.Background()

	p := &model.Participant{
		FirstName: "Marie",
		LastName:  "Dupont",
		Email:     "marie@example.com",
		Role:      model.RoleRenter,
		Location:  model.Location{Latitude: 48.85, Longitude: 2.35, City: "Paris", LastUpdated: time.Now().UTC()},
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Fatalf("expected an id to be assigned")
	}

	if err := repo.UpdateAggregate(ctx, p.ID, 4.5, 3); err != nil {
		t.Fatalf("update aggregate: %v", err)
	}
	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Rating != 4.5 || got.CompletedAppointments != 3 {
		t.Fatalf("write not visible: %+v", got)
	}
}

func TestAppointmentRepository_RatingSlotIsWriteOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAppointmentRepository(db)
	ctx := context.Background()

	renterID, providerID := uuid.New(), uuid.New()
	a := &model.Appointment{
		RenterID:   renterID,
		ProviderID: providerID,
		Time:       "10:00",
		Status:     model.AppointmentStatusCompleted,
	}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("create: %v", err)
	}

	first := &model.Rating{
		AppointmentID: a.ID,
		AuthorRole:    model.RoleRenter,
		AuthorID:      renterID,
		Score:         5,
		CreatedAt:     time.Now().UTC(),
	}
	if err := repo.AddRating(ctx, first); err != nil {
		t.Fatalf("add rating: %v", err)
	}

	// the unique slot index turns a duplicate into a storage error
	dup := &model.Rating{
		AppointmentID: a.ID,
		AuthorRole:    model.RoleRenter,
		AuthorID:      renterID,
		Score:         1,
		CreatedAt:     time.Now().UTC(),
	}
	err := repo.AddRating(ctx, dup)
	if err == nil || !IsStorage(err) {
		t.Fatalf("expected storage error on duplicate slot, got %v", err)
	}

	got, err := repo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Ratings) != 1 || got.Ratings[0].Score != 5 {
		t.Fatalf("slot not write-once: %+v", got.Ratings)
	}
}

func TestAppointmentRepository_ListByParticipantEitherSide(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAppointmentRepository(db)
	ctx := context.Background()

	me, other := uuid.New(), uuid.New()
	asRenter := &model.Appointment{RenterID: me, ProviderID: other, Time: "09:00", Status: model.AppointmentStatusPending}
	asProvider := &model.Appointment{RenterID: other, ProviderID: me, Time: "10:00", Status: model.AppointmentStatusPending}
	unrelated := &model.Appointment{RenterID: uuid.New(), ProviderID: uuid.New(), Time: "11:00", Status: model.AppointmentStatusPending}
	for _, a := range []*model.Appointment{asRenter, asProvider, unrelated} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	appts, err := repo.ListByParticipant(ctx, me)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(appts) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(appts))
	}
}

func TestSessionRepository_Pointer(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormSessionRepository(db)
	ctx := context.Background()

	s, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get empty: %v", err)
	}
	if s.Active() {
		t.Fatalf("expected inactive session")
	}

	id := uuid.New()
	if err := repo.Set(ctx, id); err != nil {
		t.Fatalf("set: %v", err)
	}
	s, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !s.Active() || *s.ParticipantID != id {
		t.Fatalf("pointer not persisted: %+v", s)
	}

	// swapping is allowed at will
	next := uuid.New()
	if err := repo.Set(ctx, next); err != nil {
		t.Fatalf("swap: %v", err)
	}
	s, _ = repo.Get(ctx)
	if *s.ParticipantID != next {
		t.Fatalf("swap not persisted: %+v", s)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	s, _ = repo.Get(ctx)
	if s.Active() {
		t.Fatalf("expected cleared session")
	}
}
