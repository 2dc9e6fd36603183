package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday("Monday")
	require.NoError(t, err)
	assert.Equal(t, Monday, d)

	d, err = ParseWeekday("sunday")
	require.NoError(t, err)
	assert.Equal(t, Sunday, d)

	d, err = ParseWeekday("WEDNESDAY")
	require.NoError(t, err)
	assert.Equal(t, Wednesday, d)

	_, err = ParseWeekday("Funday")
	assert.Error(t, err)

	_, err = ParseWeekday("")
	assert.Error(t, err)
}

func TestWeekdayString(t *testing.T) {
	assert.Equal(t, "Monday", Monday.String())
	assert.Equal(t, "Sunday", Sunday.String())
	assert.Equal(t, "Unknown", Weekday(7).String())
	assert.Equal(t, "Unknown", Weekday(-1).String())
}

func TestWeekdayOf(t *testing.T) {
	monday := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, Monday, WeekdayOf(monday))
	assert.Equal(t, Tuesday, WeekdayOf(monday.AddDate(0, 0, 1)))
	assert.Equal(t, Sunday, WeekdayOf(monday.AddDate(0, 0, 6)))
}

func TestParseDayNames(t *testing.T) {
	days, anyDay, err := ParseDayNames([]string{"Monday", "wednesday"})
	require.NoError(t, err)
	assert.False(t, anyDay)
	assert.Equal(t, []Weekday{Monday, Wednesday}, days)
}

func TestParseDayNames_EverydayKeyword(t *testing.T) {
	days, anyDay, err := ParseDayNames([]string{"Everyday"})
	require.NoError(t, err)
	assert.True(t, anyDay)
	assert.Empty(t, days)

	// The wildcard may sit alongside explicit days in legacy documents.
	days, anyDay, err = ParseDayNames([]string{"Monday", "everyday"})
	require.NoError(t, err)
	assert.True(t, anyDay)
	assert.Equal(t, []Weekday{Monday}, days)
}

func TestParseDayNames_InvalidName(t *testing.T) {
	_, _, err := ParseDayNames([]string{"Monday", "Caturday"})
	assert.Error(t, err)
}
