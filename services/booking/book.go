package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "parkbay/database/repository/booking"
	"parkbay/models"
	"parkbay/utils"
)

// CreateBooking re-runs the full validation chain as a final guard against
// staleness, then commits through the repository's atomic conditional
// write. A passed pre-check is never trusted: the transaction re-checks
// overlap, so a conflicting commit from another session surfaces as
// Unavailable rather than a double booking.
func (se *DefaultAvailabilityEngine) CreateBooking(
	ctx context.Context,
	renterID, spotID, date string,
	startHour, durationHours int,
) (*models.Booking, error) {
	logger := utils.GetLogger()

	if renterID == "" {
		return nil, NewNotAuthenticatedError("no renter identity on request")
	}

	spot, rejection, err := se.evaluate(ctx, spotID, date, startHour, durationHours)
	if err != nil {
		return nil, NewPersistenceError(err.Error())
	}
	if rejection != nil {
		return nil, rejection
	}

	now := time.Now()
	booking := &models.Booking{
		ID:            uuid.New().String(),
		SpotID:        spot.ID,
		RenterID:      renterID,
		OwnerID:       spot.OwnerID,
		Date:          date,
		StartHour:     startHour,
		EndHour:       startHour + durationHours,
		DurationHours: durationHours,
		TotalPrice:    RoundPrice(spot.Price * float64(durationHours)),
		Status:        models.BookingStatusConfirmed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := se.BookingRepo.CreateConfirmed(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			utils.BookingConflicts.Inc()
			return nil, NewUnavailableError("time slot already booked")
		}
		logger.Error("booking commit failed after passed validation",
			zap.String("spotID", spotID), zap.String("date", date), zap.Error(err))
		// Not retried here: the caller re-runs the whole validate-then-commit
		// sequence, otherwise a timed-out-but-applied write could book twice.
		return nil, NewPersistenceError("booking was not created; please retry the request")
	}

	utils.BookingsCreated.Inc()
	se.invalidateSlotCache(ctx, spotID, date)

	logger.Info("booking confirmed",
		zap.String("bookingID", booking.ID),
		zap.String("spotID", spotID),
		zap.String("date", date),
		zap.Int("startHour", startHour),
		zap.Int("endHour", booking.EndHour))

	return booking, nil
}

func (se *DefaultAvailabilityEngine) invalidateSlotCache(ctx context.Context, spotID, date string) {
	if se.Cache == nil {
		return
	}
	if err := se.Cache.Del(ctx, slotCacheKey(spotID, date)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate slot cache",
			zap.String("spotID", spotID), zap.String("date", date), zap.Error(err))
	}
}
