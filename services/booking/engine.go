package booking

import (
	"context"

	bookingRepo "parkbay/database/repository/booking"
	spotRepo "parkbay/database/repository/spot"
	"parkbay/models"

	"github.com/go-redis/redis/v8"
)

// AvailabilityEngine answers whether a spot is bookable for a date and hour
// range, and durably records bookings. Availability checks are advisory;
// the commit path re-validates inside the storage transaction.
type AvailabilityEngine interface {
	// ListAvailableSlots returns the free hours of the spot's operating
	// window on the given date as ascending "HH:00" labels. It does not
	// filter by weekday or validity window; callers date-filter first.
	ListAvailableSlots(ctx context.Context, spotID, date string) ([]string, error)

	// CheckAvailability runs the ordered validation chain and reports the
	// first failure as a caller-facing reason. Read-only.
	CheckAvailability(ctx context.Context, spotID, date string, startHour, durationHours int) (models.AvailabilityResult, error)

	// CreateBooking re-validates and commits a confirmed booking for the
	// renter, updating the derived availability index atomically.
	CreateBooking(ctx context.Context, renterID, spotID, date string, startHour, durationHours int) (*models.Booking, error)

	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListRenterBookings(ctx context.Context, renterID string) ([]models.Booking, error)
}

// DefaultAvailabilityEngine is the production engine.
type DefaultAvailabilityEngine struct {
	SpotRepo    spotRepo.SpotRepository
	BookingRepo bookingRepo.BookingRepository
	// Cache, when non-nil, holds short-lived slot listings keyed by spot and
	// date. Invalidated on every commit for the same key.
	Cache *redis.Client
}
