package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "parkbay/database/repository/booking"
	"parkbay/models"
)

// GetBooking fetches a single booking by identifier.
func (se *DefaultAvailabilityEngine) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := se.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NewNotFoundError("booking not found")
		}
		return nil, NewPersistenceError(fmt.Sprintf("booking lookup failed: %v", err))
	}
	return booking, nil
}

// ListRenterBookings fetches all bookings made by the renter.
func (se *DefaultAvailabilityEngine) ListRenterBookings(ctx context.Context, renterID string) ([]models.Booking, error) {
	if renterID == "" {
		return nil, NewNotAuthenticatedError("no renter identity on request")
	}
	bookings, err := se.BookingRepo.GetByRenter(ctx, renterID)
	if err != nil {
		return nil, NewPersistenceError(fmt.Sprintf("booking lookup failed: %v", err))
	}
	return bookings, nil
}
