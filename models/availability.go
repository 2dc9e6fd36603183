package models

// HourSlot records the state of a single hour in a spot's day.
type HourSlot struct {
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
	BookingID   string `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
}

// DailyAvailability is the derived per-(spot, date) index of occupied
// hours, keyed by "HH:00" labels. It is a denormalization of the confirmed
// bookings for that spot and date, maintained inside the same transaction
// that writes the booking; the booking collection stays the source of
// truth.
type DailyAvailability struct {
	SpotID    string              `bson:"spotId" json:"spotId"`
	Date      string              `bson:"date" json:"date"`
	TimeSlots map[string]HourSlot `bson:"timeSlots" json:"timeSlots"`
}

// AvailabilityResult is the outcome of an advisory availability check. On
// rejection, Reason is the caller-facing explanation.
type AvailabilityResult struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
