package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Leganyst/meetpoint/internal/booking"
	"github.com/Leganyst/meetpoint/internal/model"
)

// PositionSource produces the current device position. In the application it
// wraps the platform location API; tests supply a fake.
type PositionSource interface {
	Position(ctx context.Context) (model.Location, error)
}

// Subscription is a handle on a running location watch. Cancel stops the
// watch and waits for the worker to exit; it is safe to call more than once.
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (s *Subscription) Cancel() {
	s.cancel()
	<-s.done
}

// Done is closed when the watch worker has exited.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// WatchLocation starts sampling src every interval and applies each sample as
// a guarded location replace for the participant. The service keeps at most
// one live subscription: starting a new watch cancels the previous one. The
// subscription also ends when ctx is cancelled.
func (s *DirectoryService) WatchLocation(ctx context.Context, participantID uuid.UUID, src PositionSource, interval time.Duration) (*Subscription, error) {
	if _, err := s.participants.GetByID(ctx, participantID); err != nil {
		return nil, err
	}
	if interval <= 0 {
		interval = time.Minute
	}

	wctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{cancel: cancel, done: make(chan struct{})}

	s.mu.Lock()
	prev := s.watch
	s.watch = sub
	s.mu.Unlock()
	if prev != nil {
		prev.Cancel()
	}

	go s.watchLoop(wctx, sub, participantID, src, interval)

	return sub, nil
}

// StopLocationWatch cancels the live subscription, if any. Called on session
// change and on shutdown so a stale target is never updated.
func (s *DirectoryService) StopLocationWatch() {
	s.mu.Lock()
	sub := s.watch
	s.watch = nil
	s.mu.Unlock()
	if sub != nil {
		sub.Cancel()
	}
}

func (s *DirectoryService) watchLoop(ctx context.Context, sub *Subscription, participantID uuid.UUID, src PositionSource, interval time.Duration) {
	defer close(sub.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		loc, err := src.Position(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.log.Warn().Err(err).Stringer("participant", participantID).Msg("position sample failed")
			continue
		}

		if _, err := s.UpdateLocation(ctx, participantID, loc); err != nil {
			if ctx.Err() != nil {
				return
			}
			if errors.Is(err, booking.ErrStaleLocation) {
				// out-of-order sample, drop it
				s.log.Debug().Stringer("participant", participantID).Msg("stale location sample dropped")
				continue
			}
			s.log.Warn().Err(err).Stringer("participant", participantID).Msg("location update failed")
		}
	}
}
