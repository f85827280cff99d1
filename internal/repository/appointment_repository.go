package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/meetpoint/internal/model"
)

type AppointmentRepository interface {
	// Create persists a new appointment.
	Create(ctx context.Context, a *model.Appointment) error
	// GetByID resolves one appointment with its rating slots loaded.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	// ListByParticipant returns every appointment the participant is a party
	// to, on either side, with rating slots loaded.
	ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]model.Appointment, error)
	// UpdateStatus writes a new lifecycle status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) error
	// AddRating fills a rating slot. Slots are write-once.
	AddRating(ctx context.Context, rating *model.Rating) error
}

// GORM implementation.
type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) Create(ctx context.Context, a *model.Appointment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return wrap("create appointment", r.db.WithContext(ctx).Create(a).Error)
}

func (r *GormAppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	var a model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Ratings").
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, wrap("get appointment", err)
	}
	return &a, nil
}

func (r *GormAppointmentRepository) ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]model.Appointment, error) {
	var appts []model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Ratings").
		Where("renter_id = ? OR provider_id = ?", participantID, participantID).
		Order("created_at ASC").
		Find(&appts).Error
	if err != nil {
		return nil, wrap("list appointments", err)
	}
	return appts, nil
}

func (r *GormAppointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) error {
	res := r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return wrap("update appointment status", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormAppointmentRepository) AddRating(ctx context.Context, rating *model.Rating) error {
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	return wrap("add rating", r.db.WithContext(ctx).Create(rating).Error)
}
