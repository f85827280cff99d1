package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Leganyst/meetpoint/internal/booking"
	"github.com/Leganyst/meetpoint/internal/model"
	"github.com/Leganyst/meetpoint/internal/repository"
)

// Filter selects one derived appointment view.
type Filter string

const (
	FilterPending   Filter = "pending"
	FilterUpcoming  Filter = "upcoming"
	FilterCompleted Filter = "completed"
)

// ParseFilter validates a filter name from the boundary.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterPending, FilterUpcoming, FilterCompleted:
		return Filter(s), nil
	}
	return "", &booking.ValidationError{Field: "filter", Reason: "must be pending, upcoming or completed"}
}

// CreateAppointmentInput carries the fields of a create command. The acting
// participant's role decides which side of the appointment it takes; Target
// is the other party.
type CreateAppointmentInput struct {
	TargetID uuid.UUID
	Date     string // YYYY-MM-DD
	Time     string // HH:MM
	Service  string
	Notes    string
}

// AppointmentService advances appointments through the status lifecycle and
// keeps rating aggregates current.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	participants repository.ParticipantRepository
	log          zerolog.Logger

	// injectable clock for the elapsed-time gate and the view anchors
	now func() time.Time
}

func NewAppointmentService(
	appointments repository.AppointmentRepository,
	participants repository.ParticipantRepository,
	log zerolog.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		participants: participants,
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Create validates the command and persists a new pending appointment.
// Nothing is written when validation fails.
func (s *AppointmentService) Create(ctx context.Context, actorID uuid.UUID, in CreateAppointmentInput) (*model.Appointment, error) {
	date, err := booking.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	timeOfDay, err := booking.ParseTime(in.Time)
	if err != nil {
		return nil, err
	}

	if in.TargetID == actorID {
		return nil, booking.ErrSameParticipant
	}

	actor, err := s.participants.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	target, err := s.participants.GetByID(ctx, in.TargetID)
	if err != nil {
		return nil, err
	}
	if target.Role != actor.Role.Opposite() {
		return nil, &booking.ValidationError{Field: "target", Reason: "participants must have opposite roles"}
	}

	a := &model.Appointment{
		Date:    date,
		Time:    timeOfDay,
		Status:  model.AppointmentStatusPending,
		Service: in.Service,
		Notes:   in.Notes,
	}
	if actor.Role == model.RoleRenter {
		a.RenterID, a.ProviderID = actor.ID, target.ID
	} else {
		a.RenterID, a.ProviderID = target.ID, actor.ID
	}

	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}

	s.log.Info().
		Stringer("appointment", a.ID).
		Stringer("renter", a.RenterID).
		Stringer("provider", a.ProviderID).
		Msg("appointment created")

	return a, nil
}

// Get resolves one appointment.
func (s *AppointmentService) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// SetStatus applies a role-gated lifecycle transition on behalf of the acting
// participant and returns the updated appointment.
func (s *AppointmentService) SetStatus(ctx context.Context, actorID, appointmentID uuid.UUID, to model.AppointmentStatus) (*model.Appointment, error) {
	if !to.Valid() {
		return nil, &booking.ValidationError{Field: "status", Reason: "unknown status"}
	}

	a, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	role, ok := a.Party(actorID)
	if !ok {
		return nil, booking.ErrPermissionDenied
	}

	if err := booking.Transition(a, role, to, s.now()); err != nil {
		return nil, err
	}
	if err := s.appointments.UpdateStatus(ctx, a.ID, to); err != nil {
		return nil, err
	}
	a.Status = to

	s.log.Info().
		Stringer("appointment", a.ID).
		Str("status", string(to)).
		Str("actor_role", string(role)).
		Msg("appointment status changed")

	return a, nil
}

// SubmitRating writes the acting participant's rating slot on a completed
// appointment, then recomputes and persists the rated party's aggregate.
// A recompute failure is surfaced, not swallowed.
func (s *AppointmentService) SubmitRating(ctx context.Context, actorID, appointmentID uuid.UUID, score int, comment string) (*model.Appointment, error) {
	if err := booking.ValidateScore(score); err != nil {
		return nil, err
	}

	a, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	role, ok := a.Party(actorID)
	if !ok {
		return nil, booking.ErrPermissionDenied
	}
	if err := booking.CanRate(a, role); err != nil {
		return nil, err
	}

	rating := &model.Rating{
		AppointmentID: a.ID,
		AuthorRole:    role,
		AuthorID:      actorID,
		Score:         score,
		Comment:       comment,
		CreatedAt:     s.now(),
	}
	if err := s.appointments.AddRating(ctx, rating); err != nil {
		return nil, err
	}
	a.Ratings = append(a.Ratings, *rating)

	ratedID := a.OtherParty(role)
	if err := s.recomputeAggregate(ctx, ratedID); err != nil {
		return nil, err
	}

	s.log.Info().
		Stringer("appointment", a.ID).
		Stringer("rated", ratedID).
		Int("score", score).
		Msg("rating submitted")

	return a, nil
}

// MyAppointments returns one derived view for the session participant.
func (s *AppointmentService) MyAppointments(ctx context.Context, sessionID uuid.UUID, filter Filter) ([]model.Appointment, error) {
	appts, err := s.appointments.ListByParticipant(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch filter {
	case FilterPending:
		return booking.Pending(sessionID, appts), nil
	case FilterUpcoming:
		return booking.Upcoming(sessionID, appts, s.now()), nil
	case FilterCompleted:
		return booking.Completed(sessionID, appts), nil
	}
	return nil, &booking.ValidationError{Field: "filter", Reason: "unknown filter"}
}

// recomputeAggregate folds the participant's full appointment set into its
// running average and completed count and persists the result.
func (s *AppointmentService) recomputeAggregate(ctx context.Context, participantID uuid.UUID) error {
	appts, err := s.appointments.ListByParticipant(ctx, participantID)
	if err != nil {
		return err
	}
	rating, completed := booking.Aggregate(participantID, appts)
	return s.participants.UpdateAggregate(ctx, participantID, rating, completed)
}
