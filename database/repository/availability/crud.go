package availabilityRepo

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

// ErrNotFound is returned when no derived document exists for the date.
var ErrNotFound = errors.New("availability record not found")

// GetBySpotAndDate retrieves the derived availability document.
func (r *mongoAvailabilityRepo) GetBySpotAndDate(ctx context.Context, spotID, date string) (*models.DailyAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var record models.DailyAvailability
	filter := bson.M{"spotId": spotID, "date": date}
	if err := r.coll.FindOne(ctx, filter).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching availability for spot %s on %s: %w", spotID, date, err)
	}
	return &record, nil
}

// Rebuild recomputes the document from confirmed bookings and replaces
// whatever is stored, creating the document if absent.
func (r *mongoAvailabilityRepo) Rebuild(ctx context.Context, spotID, date string, bookings []models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	slots := make(map[string]models.HourSlot)
	for _, b := range bookings {
		if b.Status != models.BookingStatusConfirmed {
			continue
		}
		for hour := b.StartHour; hour < b.EndHour; hour++ {
			slots[models.FormatHour(hour)] = models.HourSlot{
				IsAvailable: false,
				BookingID:   b.ID,
			}
		}
	}

	record := models.DailyAvailability{
		SpotID:    spotID,
		Date:      date,
		TimeSlots: slots,
	}
	filter := bson.M{"spotId": spotID, "date": date}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, record, opts); err != nil {
		return fmt.Errorf("failed to rebuild availability for spot %s on %s: %w", spotID, date, err)
	}
	return nil
}
