package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format used on bookings, schedules and
// availability documents.
const DateLayout = "2006-01-02"

// Booking statuses. Transitions are forward-only: the engine creates
// bookings directly as confirmed; completed and cancelled are applied by
// the lifecycle sweep or an operator, never by the booking path.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a reservation of a spot for a run of whole hours on one
// calendar day. The hour range is half-open: [StartHour, EndHour).
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	SpotID        string    `bson:"spotId" json:"spotId"`
	RenterID      string    `bson:"renterId" json:"renterId"`
	OwnerID       string    `bson:"ownerId" json:"ownerId"`
	Date          string    `bson:"date" json:"date"` // "2006-01-02"
	StartHour     int       `bson:"startHour" json:"startHour"`
	EndHour       int       `bson:"endHour" json:"endHour"`
	DurationHours int       `bson:"durationHours" json:"durationHours"`
	TotalPrice    float64   `bson:"totalPrice" json:"totalPrice"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Overlaps reports whether the booking's hour range intersects
// [startHour, endHour). Ranges are half-open, so back-to-back bookings do
// not overlap.
func (b *Booking) Overlaps(startHour, endHour int) bool {
	return b.StartHour < endHour && startHour < b.EndHour
}

// Validate checks the booking's internal invariants.
func (b *Booking) Validate() error {
	if b.DurationHours < 1 {
		return fmt.Errorf("duration must be at least one hour, got %d", b.DurationHours)
	}
	if b.EndHour != b.StartHour+b.DurationHours {
		return fmt.Errorf("end hour %d does not equal start %d plus duration %d",
			b.EndHour, b.StartHour, b.DurationHours)
	}
	if _, err := time.Parse(DateLayout, b.Date); err != nil {
		return fmt.Errorf("invalid booking date %q: %w", b.Date, err)
	}
	return nil
}

// FormatHour renders an hour of day as the zero-padded "HH:00" label used
// in slot listings and availability documents.
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
