package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"parkbay/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateConfirmed commits a booking and the derived availability update as
// one transaction. The overlap re-check runs inside the session, so two
// racing attempts for intersecting hours cannot both commit: the second
// either observes the first booking and aborts with ErrSlotTaken, or hits a
// write conflict and surfaces it to the caller for a full re-validate.
func (repo *MongoBookingRepo) CreateConfirmed(ctx context.Context, booking *models.Booking) error {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"spotId":    booking.SpotID,
			"date":      booking.Date,
			"status":    models.BookingStatusConfirmed,
			"startHour": bson.M{"$lt": booking.EndHour},
			"endHour":   bson.M{"$gt": booking.StartHour},
		}
		conflicts, err := repo.bookingColl.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("overlap re-check failed: %w", err)
		}
		if conflicts > 0 {
			return ErrSlotTaken
		}

		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}

		set := bson.M{
			"spotId": booking.SpotID,
			"date":   booking.Date,
		}
		for hour := booking.StartHour; hour < booking.EndHour; hour++ {
			set["timeSlots."+models.FormatHour(hour)] = models.HourSlot{
				IsAvailable: false,
				BookingID:   booking.ID,
			}
		}
		indexFilter := bson.M{"spotId": booking.SpotID, "date": booking.Date}
		update := bson.M{"$set": set}
		opts := options.Update().SetUpsert(true)
		if _, err := repo.availabilityColl.UpdateOne(sc, indexFilter, update, opts); err != nil {
			return fmt.Errorf("availability index update failed: %w", err)
		}

		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
