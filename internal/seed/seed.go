// Package seed fills an empty directory with the fixed set of participants
// the application selects its session from; this app has no signup flow.
package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/meetpoint/internal/model"
)

// Participants inserts the starter directory when the participants table is
// empty. Running it again is a no-op.
func Participants(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Participant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	entries := []model.Participant{
		{
			FirstName: "Marie", LastName: "Dupont",
			Email: "marie.dupont@example.com", Phone: "+33 6 12 34 56 78",
			Role: model.RoleRenter,
			Location: model.Location{
				Latitude: 48.8566, Longitude: 2.3522,
				City: "Paris", Address: "1 Rue de Rivoli", LastUpdated: now,
			},
			Rating: 4.5, CompletedAppointments: 27,
		},
		{
			FirstName: "Claire", LastName: "Moreau",
			Email: "claire.moreau@example.com", Phone: "+33 6 56 78 90 12",
			Role: model.RoleRenter,
			Location: model.Location{
				Latitude: 48.8397, Longitude: 2.2399,
				City: "Boulogne-Billancourt", Address: "25 Avenue du Général Leclerc", LastUpdated: now,
			},
			Rating: 4.2, CompletedAppointments: 9,
		},
		{
			FirstName: "Lucas", LastName: "Bernard",
			Email: "lucas.bernard@example.com", Phone: "+33 6 67 89 01 23",
			Role: model.RoleRenter,
			Location: model.Location{
				Latitude: 48.8666, Longitude: 2.3333,
				City: "Paris", Address: "5 Rue du Louvre", LastUpdated: now,
			},
			Rating: 3.9, CompletedAppointments: 6,
		},
		{
			FirstName: "Paul", LastName: "Martin",
			Email: "paul.martin@example.com", Phone: "+33 6 23 45 67 89",
			Role: model.RoleProvider,
			Location: model.Location{
				Latitude: 48.8606, Longitude: 2.3376,
				City: "Paris", Address: "42 Avenue des Champs-Élysées", LastUpdated: now,
			},
			Rating: 4.0, CompletedAppointments: 12,
		},
		{
			FirstName: "Sophie", LastName: "Leroy",
			Email: "sophie.leroy@example.com", Phone: "+33 6 34 56 78 90",
			Role: model.RoleProvider,
			Location: model.Location{
				Latitude: 48.8738, Longitude: 2.2950,
				City: "Paris", Address: "8 Place Charles de Gaulle", LastUpdated: now,
			},
			Rating: 5.0, CompletedAppointments: 41,
		},
		{
			FirstName: "Bruno", LastName: "Lefevre",
			Email: "bruno.lefevre@example.com", Phone: "+33 6 45 67 89 01",
			Role: model.RoleProvider,
			Location: model.Location{
				Latitude: 48.8529, Longitude: 2.3499,
				City: "Paris", Address: "12 Rue de la Bastille", LastUpdated: now,
			},
			Rating: 4.8, CompletedAppointments: 44,
		},
	}

	for i := range entries {
		entries[i].ID = uuid.New()
		entries[i].CreatedAt = now
	}

	return db.WithContext(ctx).Create(&entries).Error
}
