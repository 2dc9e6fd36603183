// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parkbay/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a booking document by ID.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	filter := bson.M{"id": bookingID}
	if err := repo.bookingColl.FindOne(ctx, filter).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching booking with id %s: %w", bookingID, err)
	}
	return &booking, nil
}

// GetConfirmedBySpotAndDate fetches all confirmed bookings for a spot on a
// given date, ordered by start hour.
func (repo *MongoBookingRepo) GetConfirmedBySpotAndDate(ctx context.Context, spotID, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"spotId": spotID,
		"date":   date,
		"status": models.BookingStatusConfirmed,
	}
	opts := options.Find().SetSort(bson.D{{Key: "startHour", Value: 1}})
	cursor, err := repo.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for spot %s on %s: %w", spotID, date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// GetByRenter fetches all bookings made by a renter, most recent date first.
func (repo *MongoBookingRepo) GetByRenter(ctx context.Context, renterID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"renterId": renterID}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "startHour", Value: 1}})
	cursor, err := repo.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for renter %s: %w", renterID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// CompletePastBookings transitions confirmed bookings dated before today to
// completed. Run by the background sweep, never by the booking path.
func (repo *MongoBookingRepo) CompletePastBookings(ctx context.Context, today string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	filter := bson.M{
		"status": models.BookingStatusConfirmed,
		"date":   bson.M{"$lt": today},
	}
	update := bson.M{"$set": bson.M{
		"status":    models.BookingStatusCompleted,
		"updatedAt": time.Now(),
	}}
	res, err := repo.bookingColl.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to complete past bookings: %w", err)
	}
	return res.ModifiedCount, nil
}
