package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Leganyst/meetpoint/internal/booking"
	"github.com/Leganyst/meetpoint/internal/geo"
	"github.com/Leganyst/meetpoint/internal/model"
	"github.com/Leganyst/meetpoint/internal/repository"
)

// ErrNoSession is returned by operations that need an active participant when
// none has been selected.
var ErrNoSession = errors.New("no active session")

// DefaultRadiusKm bounds a nearby query when the caller passes none.
const DefaultRadiusKm = 10.0

// NearbyParticipant is one radius-query result.
type NearbyParticipant struct {
	Participant model.Participant
	DistanceKm  float64
}

// DirectoryService owns the participant directory, the session pointer and
// the location stream subscription.
type DirectoryService struct {
	participants repository.ParticipantRepository
	sessions     repository.SessionRepository
	log          zerolog.Logger

	// at most one live location subscription per service instance
	mu    sync.Mutex
	watch *Subscription
}

func NewDirectoryService(
	participants repository.ParticipantRepository,
	sessions repository.SessionRepository,
	log zerolog.Logger,
) *DirectoryService {
	return &DirectoryService{
		participants: participants,
		sessions:     sessions,
		log:          log,
	}
}

// ListParticipants returns the whole directory.
func (s *DirectoryService) ListParticipants(ctx context.Context) ([]model.Participant, error) {
	return s.participants.List(ctx)
}

// GetParticipant resolves one directory entry.
func (s *DirectoryService) GetParticipant(ctx context.Context, id uuid.UUID) (*model.Participant, error) {
	return s.participants.GetByID(ctx, id)
}

// SetSession points the session at an existing participant. Any live
// location watch targets the previous participant and is cancelled.
func (s *DirectoryService) SetSession(ctx context.Context, participantID uuid.UUID) (*model.Participant, error) {
	p, err := s.participants.GetByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Set(ctx, participantID); err != nil {
		return nil, err
	}
	s.StopLocationWatch()
	return p, nil
}

// ClearSession drops the session pointer and cancels any live watch.
func (s *DirectoryService) ClearSession(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	s.StopLocationWatch()
	return nil
}

// SessionParticipant resolves the active participant, or ErrNoSession.
func (s *DirectoryService) SessionParticipant(ctx context.Context) (*model.Participant, error) {
	sess, err := s.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !sess.Active() {
		return nil, ErrNoSession
	}
	return s.participants.GetByID(ctx, *sess.ParticipantID)
}

// Nearby returns the opposite-role participants within radiusKm of the given
// participant, nearest first. radiusKm <= 0 falls back to DefaultRadiusKm.
func (s *DirectoryService) Nearby(ctx context.Context, participantID uuid.UUID, radiusKm float64) ([]NearbyParticipant, error) {
	origin, err := s.participants.GetByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}

	candidates, err := s.participants.ListByRole(ctx, origin.Role.Opposite())
	if err != nil {
		return nil, err
	}

	matches := geo.Nearby(origin.Coordinate(), radiusKm, candidates)
	out := make([]NearbyParticipant, 0, len(matches))
	for _, m := range matches {
		out = append(out, NearbyParticipant{Participant: m.Item, DistanceKm: m.DistanceKm})
	}
	return out, nil
}

// UpdateLocation replaces a participant's stored location. Updates are
// idempotent replace-commands guarded against stale delivery: an update whose
// timestamp is not newer than the stored one is rejected with
// booking.ErrStaleLocation and nothing is written.
func (s *DirectoryService) UpdateLocation(ctx context.Context, participantID uuid.UUID, loc model.Location) (*model.Participant, error) {
	if loc.LastUpdated.IsZero() {
		loc.LastUpdated = time.Now().UTC()
	}

	p, err := s.participants.GetByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if !loc.LastUpdated.After(p.Location.LastUpdated) {
		return nil, booking.ErrStaleLocation
	}

	if err := s.participants.UpdateLocation(ctx, participantID, loc); err != nil {
		return nil, err
	}
	p.Location = loc
	return p, nil
}
