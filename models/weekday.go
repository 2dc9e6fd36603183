package models

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is a closed enumeration of the days a spot's schedule may name.
// Schedules that apply to every day set WeeklySchedule.AnyDay instead of
// enumerating all seven values.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "Unknown"
	}
	return weekdayNames[d]
}

// ParseWeekday maps a day name to its Weekday value. Matching is
// case-insensitive; anything outside Monday..Sunday is an error.
func ParseWeekday(name string) (Weekday, error) {
	for i, n := range weekdayNames {
		if strings.EqualFold(name, n) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q", name)
}

// WeekdayOf converts a calendar date to its Weekday.
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// EverydayKeyword is the legacy wildcard some stored schedules carry in
// their day list instead of an explicit any-day flag.
const EverydayKeyword = "Everyday"

// ParseDayNames converts a stored list of day names into enum values plus
// the any-day flag. The legacy "Everyday" keyword sets the flag and is not
// kept in the day list.
func ParseDayNames(names []string) ([]Weekday, bool, error) {
	var (
		days   []Weekday
		anyDay bool
	)
	for _, name := range names {
		if strings.EqualFold(name, EverydayKeyword) {
			anyDay = true
			continue
		}
		d, err := ParseWeekday(name)
		if err != nil {
			return nil, false, err
		}
		days = append(days, d)
	}
	return days, anyDay, nil
}
