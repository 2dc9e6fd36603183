package models

import (
	"fmt"
	"time"
)

// Spot statuses. Deleting a spot soft-inactivates it; bookings never touch
// the spot record.
const (
	SpotStatusActive   = "active"
	SpotStatusInactive = "inactive"
)

// WeeklySchedule is a spot's recurring availability rule: which weekdays it
// can be booked, the daily operating window [StartHour, EndHour), and the
// calendar window [ValidFrom, ValidUntil] (inclusive) the rule applies to.
type WeeklySchedule struct {
	Days       []Weekday `bson:"days" json:"days"`
	AnyDay     bool      `bson:"anyDay" json:"anyDay"`
	StartHour  int       `bson:"startHour" json:"startHour"`   // hour of day, 0-23
	EndHour    int       `bson:"endHour" json:"endHour"`       // exclusive
	ValidFrom  string    `bson:"validFrom" json:"validFrom"`   // "2006-01-02"
	ValidUntil string    `bson:"validUntil" json:"validUntil"` // "2006-01-02"
}

// AllowsDay reports whether the schedule permits bookings on the given day.
func (s WeeklySchedule) AllowsDay(d Weekday) bool {
	if s.AnyDay {
		return true
	}
	for _, day := range s.Days {
		if day == d {
			return true
		}
	}
	return false
}

// ContainsDate reports whether date falls inside [ValidFrom, ValidUntil].
// Dates are compared as "2006-01-02" strings, which order chronologically.
func (s WeeklySchedule) ContainsDate(date string) bool {
	return date >= s.ValidFrom && date <= s.ValidUntil
}

// Validate checks the schedule invariants.
func (s WeeklySchedule) Validate() error {
	if s.StartHour < 0 || s.EndHour > 24 || s.StartHour >= s.EndHour {
		return fmt.Errorf("invalid operating window [%d, %d)", s.StartHour, s.EndHour)
	}
	if _, err := time.Parse(DateLayout, s.ValidFrom); err != nil {
		return fmt.Errorf("invalid validFrom date %q: %w", s.ValidFrom, err)
	}
	if _, err := time.Parse(DateLayout, s.ValidUntil); err != nil {
		return fmt.Errorf("invalid validUntil date %q: %w", s.ValidUntil, err)
	}
	if s.ValidFrom > s.ValidUntil {
		return fmt.Errorf("validFrom %s is after validUntil %s", s.ValidFrom, s.ValidUntil)
	}
	if !s.AnyDay && len(s.Days) == 0 {
		return fmt.Errorf("schedule permits no days")
	}
	return nil
}

// Spot represents a listed parking spot.
type Spot struct {
	ID          string         `bson:"id" json:"id"`
	OwnerID     string         `bson:"ownerId" json:"ownerId"`
	Address     string         `bson:"address,omitempty" json:"address,omitempty"`
	City        string         `bson:"city,omitempty" json:"city,omitempty"`
	Price       float64        `bson:"price" json:"price"` // hourly rate
	Schedule    WeeklySchedule `bson:"schedule" json:"schedule"`
	Status      string         `bson:"status" json:"status"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time      `bson:"updatedAt" json:"updatedAt"`
	Description string         `bson:"description,omitempty" json:"description,omitempty"`
}

// IsActive reports whether the spot can take new bookings.
func (s *Spot) IsActive() bool {
	return s.Status == SpotStatusActive
}
