package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/meetpoint/internal/model"
)

type SessionRepository interface {
	// Get returns the session pointer. A missing row is an empty session,
	// not an error.
	Get(ctx context.Context) (*model.Session, error)
	// Set points the session at a participant.
	Set(ctx context.Context, participantID uuid.UUID) error
	// Clear drops the pointer without deleting the row.
	Clear(ctx context.Context) error
}

// GORM implementation over the single session row.
type GormSessionRepository struct {
	db *gorm.DB
}

func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

func (r *GormSessionRepository) Get(ctx context.Context) (*model.Session, error) {
	var s model.Session
	err := r.db.WithContext(ctx).First(&s, "id = ?", model.SessionRowID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.Session{ID: model.SessionRowID}, nil
		}
		return nil, wrap("get session", err)
	}
	return &s, nil
}

func (r *GormSessionRepository) Set(ctx context.Context, participantID uuid.UUID) error {
	s := model.Session{
		ID:            model.SessionRowID,
		ParticipantID: &participantID,
		UpdatedAt:     time.Now().UTC(),
	}
	return wrap("set session", r.db.WithContext(ctx).Save(&s).Error)
}

func (r *GormSessionRepository) Clear(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("id = ?", model.SessionRowID).
		Updates(map[string]any{
			"participant_id": nil,
			"updated_at":     time.Now().UTC(),
		}).Error
	return wrap("clear session", err)
}
