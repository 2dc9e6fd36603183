package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	spotRepo "parkbay/database/repository/spot"
	"parkbay/models"
	"parkbay/utils"
)

// evaluate runs the ordered validation chain for a proposed booking and
// returns the spot on success. A non-nil *EngineError is a validation
// rejection; a non-nil error is a store failure.
func (se *DefaultAvailabilityEngine) evaluate(
	ctx context.Context,
	spotID, date string,
	startHour, durationHours int,
) (*models.Spot, *EngineError, error) {
	spot, err := se.SpotRepo.GetActiveByID(ctx, spotID)
	if err != nil {
		if errors.Is(err, spotRepo.ErrNotFound) {
			return nil, NewNotFoundError("spot not found"), nil
		}
		return nil, nil, fmt.Errorf("spot lookup failed: %w", err)
	}

	if durationHours < 1 {
		return nil, NewInvalidScheduleError("duration must be at least one hour"), nil
	}

	requestDate, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return nil, NewInvalidScheduleError("invalid date format, expected YYYY-MM-DD"), nil
	}

	day := models.WeekdayOf(requestDate)
	if !spot.Schedule.AllowsDay(day) {
		return nil, NewInvalidScheduleError(fmt.Sprintf("spot is not available on %ss", day)), nil
	}

	if !spot.Schedule.ContainsDate(date) {
		return nil, NewInvalidScheduleError("date is outside the valid booking period"), nil
	}

	endHour := startHour + durationHours
	if startHour < spot.Schedule.StartHour || endHour > spot.Schedule.EndHour {
		return nil, NewInvalidScheduleError("time is outside operating hours"), nil
	}

	bookings, err := se.BookingRepo.GetConfirmedBySpotAndDate(ctx, spotID, date)
	if err != nil {
		return nil, nil, fmt.Errorf("booking lookup failed: %w", err)
	}
	for i := range bookings {
		if bookings[i].Overlaps(startHour, endHour) {
			return nil, NewUnavailableError("time slot already booked"), nil
		}
	}

	return spot, nil, nil
}

// CheckAvailability is the advisory pre-check. It must be re-run at commit
// time; the gap between a passed check and the write is racy by nature, and
// only the storage transaction closes it.
func (se *DefaultAvailabilityEngine) CheckAvailability(
	ctx context.Context,
	spotID, date string,
	startHour, durationHours int,
) (models.AvailabilityResult, error) {
	_, rejection, err := se.evaluate(ctx, spotID, date, startHour, durationHours)
	if err != nil {
		return models.AvailabilityResult{}, NewPersistenceError(err.Error())
	}
	if rejection != nil {
		utils.AvailabilityChecks.WithLabelValues("rejected").Inc()
		return models.AvailabilityResult{Available: false, Reason: rejection.Message}, nil
	}
	utils.AvailabilityChecks.WithLabelValues("available").Inc()
	return models.AvailabilityResult{Available: true}, nil
}
