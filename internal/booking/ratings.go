package booking

import (
	"math"

	"github.com/google/uuid"

	"github.com/Leganyst/meetpoint/internal/model"
)

// EarnedScores collects the scores addressed to a participant across the
// appointment set: the renter-authored slot when it was the provider, the
// provider-authored slot when it was the renter. Appointments must carry
// their loaded Ratings.
func EarnedScores(participantID uuid.UUID, appts []model.Appointment) []int {
	var scores []int
	for i := range appts {
		a := &appts[i]
		switch participantID {
		case a.ProviderID:
			if r := a.RatingBy(model.RoleRenter); r != nil {
				scores = append(scores, r.Score)
			}
		case a.RenterID:
			if r := a.RatingBy(model.RoleProvider); r != nil {
				scores = append(scores, r.Score)
			}
		}
	}
	return scores
}

// AverageScore is the arithmetic mean rounded to one decimal, 0 when empty.
func AverageScore(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return math.Round(float64(sum)/float64(len(scores))*10) / 10
}

// CompletedCount counts completed appointments the participant is a party to,
// on either side.
func CompletedCount(participantID uuid.UUID, appts []model.Appointment) int {
	n := 0
	for i := range appts {
		a := &appts[i]
		if a.Status != model.AppointmentStatusCompleted {
			continue
		}
		if _, ok := a.Party(participantID); ok {
			n++
		}
	}
	return n
}

// Aggregate recomputes a participant's running rating and completed count
// from the full appointment set. Pure: the same set always yields the same
// result regardless of submission order.
func Aggregate(participantID uuid.UUID, appts []model.Appointment) (rating float64, completed int) {
	return AverageScore(EarnedScores(participantID, appts)), CompletedCount(participantID, appts)
}
