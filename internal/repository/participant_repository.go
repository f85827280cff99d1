package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/meetpoint/internal/model"
)

type ParticipantRepository interface {
	// Create persists a new directory entry.
	Create(ctx context.Context, p *model.Participant) error
	// GetByID resolves one participant.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Participant, error)
	// List returns the whole directory.
	List(ctx context.Context) ([]model.Participant, error)
	// ListByRole returns the directory entries with the given role.
	ListByRole(ctx context.Context, role model.Role) ([]model.Participant, error)
	// UpdateLocation replaces the stored location fields.
	UpdateLocation(ctx context.Context, id uuid.UUID, loc model.Location) error
	// UpdateAggregate persists a recomputed rating average and completed count.
	UpdateAggregate(ctx context.Context, id uuid.UUID, rating float64, completed int) error
}

// GORM implementation.
type GormParticipantRepository struct {
	db *gorm.DB
}

func NewGormParticipantRepository(db *gorm.DB) *GormParticipantRepository {
	return &GormParticipantRepository{db: db}
}

func (r *GormParticipantRepository) Create(ctx context.Context, p *model.Participant) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return wrap("create participant", r.db.WithContext(ctx).Create(p).Error)
}

func (r *GormParticipantRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Participant, error) {
	var p model.Participant
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, wrap("get participant", err)
	}
	return &p, nil
}

func (r *GormParticipantRepository) List(ctx context.Context) ([]model.Participant, error) {
	var participants []model.Participant
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&participants).Error
	if err != nil {
		return nil, wrap("list participants", err)
	}
	return participants, nil
}

func (r *GormParticipantRepository) ListByRole(ctx context.Context, role model.Role) ([]model.Participant, error) {
	var participants []model.Participant
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("created_at ASC").
		Find(&participants).Error
	if err != nil {
		return nil, wrap("list participants by role", err)
	}
	return participants, nil
}

func (r *GormParticipantRepository) UpdateLocation(ctx context.Context, id uuid.UUID, loc model.Location) error {
	res := r.db.WithContext(ctx).
		Model(&model.Participant{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"location_latitude":     loc.Latitude,
			"location_longitude":    loc.Longitude,
			"location_city":         loc.City,
			"location_address":      loc.Address,
			"location_last_updated": loc.LastUpdated,
		})
	if res.Error != nil {
		return wrap("update location", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormParticipantRepository) UpdateAggregate(ctx context.Context, id uuid.UUID, rating float64, completed int) error {
	res := r.db.WithContext(ctx).
		Model(&model.Participant{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":                 rating,
			"completed_appointments": completed,
		})
	if res.Error != nil {
		return wrap("update aggregate", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
