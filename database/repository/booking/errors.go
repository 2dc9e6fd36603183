package bookingRepo

import "errors"

var (
	// ErrNotFound is returned when no booking matches the lookup.
	ErrNotFound = errors.New("booking not found")

	// ErrSlotTaken is returned when the transactional overlap guard finds a
	// confirmed booking intersecting the requested hours.
	ErrSlotTaken = errors.New("time slot already booked")
)
