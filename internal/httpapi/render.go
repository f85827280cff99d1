package httpapi

import (
	"time"

	"github.com/Leganyst/meetpoint/internal/model"
	"github.com/Leganyst/meetpoint/internal/service"
)

type locationJSON struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	City      string    `json:"city"`
	Address   string    `json:"address,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

type participantJSON struct {
	ID                    string       `json:"id"`
	FirstName             string       `json:"first_name"`
	LastName              string       `json:"last_name"`
	Email                 string       `json:"email"`
	Phone                 string       `json:"phone,omitempty"`
	Role                  string       `json:"role"`
	Location              locationJSON `json:"location"`
	Rating                float64      `json:"rating"`
	CompletedAppointments int          `json:"completed_appointments"`
}

type nearbyJSON struct {
	participantJSON
	DistanceKm float64 `json:"distance_km"`
}

type ratingJSON struct {
	AuthorRole string    `json:"author_role"`
	AuthorID   string    `json:"author_id"`
	Score      int       `json:"score"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type appointmentJSON struct {
	ID             string      `json:"id"`
	RenterID       string      `json:"renter_id"`
	ProviderID     string      `json:"provider_id"`
	Date           string      `json:"date"`
	Time           string      `json:"time"`
	Status         string      `json:"status"`
	Service        string      `json:"service,omitempty"`
	Notes          string      `json:"notes,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	RenterRating   *ratingJSON `json:"renter_rating,omitempty"`
	ProviderRating *ratingJSON `json:"provider_rating,omitempty"`
}

func renderParticipant(p *model.Participant) participantJSON {
	return participantJSON{
		ID:        p.ID.String(),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		Role:      string(p.Role),
		Location: locationJSON{
			Latitude:  p.Location.Latitude,
			Longitude: p.Location.Longitude,
			City:      p.Location.City,
			Address:   p.Location.Address,
			UpdatedAt: p.Location.LastUpdated,
		},
		Rating:                p.Rating,
		CompletedAppointments: p.CompletedAppointments,
	}
}

func renderParticipants(ps []model.Participant) []participantJSON {
	out := make([]participantJSON, 0, len(ps))
	for i := range ps {
		out = append(out, renderParticipant(&ps[i]))
	}
	return out
}

func renderNearby(ms []service.NearbyParticipant) []nearbyJSON {
	out := make([]nearbyJSON, 0, len(ms))
	for i := range ms {
		out = append(out, nearbyJSON{
			participantJSON: renderParticipant(&ms[i].Participant),
			DistanceKm:      ms[i].DistanceKm,
		})
	}
	return out
}

func renderRating(r *model.Rating) *ratingJSON {
	if r == nil {
		return nil
	}
	return &ratingJSON{
		AuthorRole: string(r.AuthorRole),
		AuthorID:   r.AuthorID.String(),
		Score:      r.Score,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

func renderAppointment(a *model.Appointment) appointmentJSON {
	return appointmentJSON{
		ID:             a.ID.String(),
		RenterID:       a.RenterID.String(),
		ProviderID:     a.ProviderID.String(),
		Date:           time.Time(a.Date).Format("2006-01-02"),
		Time:           a.Time,
		Status:         string(a.Status),
		Service:        a.Service,
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
		RenterRating:   renderRating(a.RatingBy(model.RoleRenter)),
		ProviderRating: renderRating(a.RatingBy(model.RoleProvider)),
	}
}

func renderAppointments(as []model.Appointment) []appointmentJSON {
	out := make([]appointmentJSON, 0, len(as))
	for i := range as {
		out = append(out, renderAppointment(&as[i]))
	}
	return out
}
