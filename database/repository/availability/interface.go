// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"parkbay/database"
	"parkbay/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository reads and repairs the derived spotAvailability
// index. Writes on the booking path happen inside the booking repository's
// transaction; this repository only serves reads and the rebuild task.
type AvailabilityRepository interface {
	GetBySpotAndDate(ctx context.Context, spotID, date string) (*models.DailyAvailability, error)

	// Rebuild replaces the derived document for (spot, date) with one
	// recomputed from the given confirmed bookings. Used to repair drift
	// introduced by writers outside this service.
	Rebuild(ctx context.Context, spotID, date string, bookings []models.Booking) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	return &mongoAvailabilityRepo{
		coll: database.DB().Collection("spotAvailability"),
	}
}
