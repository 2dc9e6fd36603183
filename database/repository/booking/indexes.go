// FILE: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings and
// spotAvailability collections.
func (repo *MongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bookingIndexes := []mongo.IndexModel{
		// Unique index on booking ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index backing the overlap guard and slot listing query
		{
			Keys: bson.D{
				{Key: "spotId", Value: 1},
				{Key: "date", Value: 1},
				{Key: "status", Value: 1},
				{Key: "startHour", Value: 1},
			},
			Options: options.Index().SetName("spot_date_status_start_idx"),
		},
		// Renter dashboard listing
		{
			Keys:    bson.D{{Key: "renterId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("renter_date_idx"),
		},
	}
	if _, err := repo.bookingColl.Indexes().CreateMany(ctx, bookingIndexes); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}

	availabilityIndexes := []mongo.IndexModel{
		// One derived document per spot and date
		{
			Keys:    bson.D{{Key: "spotId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_spot_date"),
		},
	}
	if _, err := repo.availabilityColl.Indexes().CreateMany(ctx, availabilityIndexes); err != nil {
		return fmt.Errorf("failed to create availability indexes: %w", err)
	}
	return nil
}
