// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"parkbay/database"
	"parkbay/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository owns the bookings collection and the derived
// spotAvailability index. The two are mutable views of the same
// per-(spot, date) interval space, so the repository that writes one writes
// both; no other component mutates either.
type BookingRepository interface {
	// CreateConfirmed atomically commits a confirmed booking: inside one
	// transaction it re-checks that no confirmed booking overlaps the
	// requested hours, inserts the record, and marks the booked hours on the
	// derived availability document. Returns ErrSlotTaken when the overlap
	// guard rejects the write.
	CreateConfirmed(ctx context.Context, booking *models.Booking) error

	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	GetConfirmedBySpotAndDate(ctx context.Context, spotID, date string) ([]models.Booking, error)
	GetByRenter(ctx context.Context, renterID string) ([]models.Booking, error)

	// CompletePastBookings moves confirmed bookings dated strictly before
	// the given day to completed and reports how many were updated.
	CompletePastBookings(ctx context.Context, today string) (int64, error)

	EnsureIndexes() error
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl      *mongo.Collection
	availabilityColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &MongoBookingRepo{
		bookingColl:      db.Collection("bookings"),
		availabilityColl: db.Collection("spotAvailability"),
	}
}
