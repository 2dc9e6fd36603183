package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_Overlaps(t *testing.T) {
	b := &Booking{StartHour: 10, EndHour: 12}

	assert.True(t, b.Overlaps(10, 12), "identical range")
	assert.True(t, b.Overlaps(11, 13), "overlaps the tail")
	assert.True(t, b.Overlaps(9, 11), "overlaps the head")
	assert.True(t, b.Overlaps(9, 13), "fully contains")
	assert.True(t, b.Overlaps(11, 12), "fully contained")

	assert.False(t, b.Overlaps(12, 14), "back-to-back after")
	assert.False(t, b.Overlaps(8, 10), "back-to-back before")
	assert.False(t, b.Overlaps(14, 16), "disjoint")
}

func TestBooking_Validate(t *testing.T) {
	valid := Booking{Date: "2026-01-05", StartHour: 10, EndHour: 12, DurationHours: 2}
	assert.NoError(t, valid.Validate())

	zero := valid
	zero.DurationHours = 0
	zero.EndHour = 10
	assert.Error(t, zero.Validate())

	mismatched := valid
	mismatched.EndHour = 13
	assert.Error(t, mismatched.Validate())

	badDate := valid
	badDate.Date = "Jan 5, 2026"
	assert.Error(t, badDate.Validate())
}

func TestFormatHour(t *testing.T) {
	assert.Equal(t, "00:00", FormatHour(0))
	assert.Equal(t, "09:00", FormatHour(9))
	assert.Equal(t, "10:00", FormatHour(10))
	assert.Equal(t, "23:00", FormatHour(23))
}
