package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	bookingRepo "parkbay/database/repository/booking"
	"parkbay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking_Success(t *testing.T) {
	spots := new(MockSpotRepo)
	bookings := new(MockBookingRepo)
	spots.On("GetActiveByID", mock.Anything, "spot-1").Return(testSpot(), nil)
	bookings.On("GetConfirmedBySpotAndDate", mock.Anything, "spot-1", testMonday).
		Return([]models.Booking{confirmed("b1", 10, 12)}, nil)
	bookings.On("CreateConfirmed", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	engine := newTestEngine(spots, bookings)
	booking, err := engine.CreateBooking(context.Background(), "renter-9", "spot-1", testMonday, 12, 2)

	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "spot-1", booking.SpotID)
	assert.Equal(t, "renter-9", booking.RenterID)
	assert.Equal(t, "owner-1", booking.OwnerID)
	assert.Equal(t, 12, booking.StartHour)
	assert.Equal(t, 14, booking.EndHour)
	assert.Equal(t, 2, booking.DurationHours)
	assert.Equal(t, 11.00, booking.TotalPrice)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	bookings.AssertExpectations(t)
}

func TestCreateBooking_OverlapRejectedBeforeCommit(t *testing.T) {
	spots := new(MockSpotRepo)
	bookings := new(MockBookingRepo)
	spots.On("GetActiveByID", mock.Anything, "spot-1").Return(testSpot(), nil)
	bookings.On("GetConfirmedBySpotAndDate", mock.Anything, "spot-1", testMonday).
		Return([]models.Booking{confirmed("b1", 10, 12)}, nil)

	engine := newTestEngine(spots, bookings)
	booking, err := engine.CreateBooking(context.Background(), "renter-9", "spot-1", testMonday, 11, 2)

	assert.Nil(t, booking)
	engineErr, ok := AsEngineError(err)
	require.True(t, ok)
	assert.Equal(t, CodeUnavailable, engineErr.Code)
	bookings.AssertNotCalled(t, "CreateConfirmed", mock.Anything, mock.Anything)
}

func TestCreateBooking_MissingRenterIdentity(t *testing.T) {
	spots := new(MockSpotRepo)
	bookings := new(MockBookingRepo)

	engine := newTestEngine(spots, bookings)
	booking, err := engine.CreateBooking(context.Background(), "", "spot-1", testMonday, 10, 1)

	assert.Nil(t, booking)
	engineErr, ok := AsEngineError(err)
	require.True(t, ok)
	assert.Equal(t, CodeNotAuthenticated, engineErr.Code)
	spots.AssertNotCalled(t, "GetActiveByID", mock.Anything, mock.Anything)
}

func TestCreateBooking_SlotTakenAtCommit(t *testing.T) {
	spots := new(MockSpotRepo)
	bookings := new(MockBookingRepo)
	spots.On("GetActiveByID", mock.Anything, "spot-1").Return(testSpot(), nil)
	bookings.On("GetConfirmedBySpotAndDate", mock.Anything, "spot-1", testMonday).
		Return([]models.Booking{}, nil)
	bookings.On("CreateConfirmed", mock.Anything, mock.AnythingOfType("*models.Booking")).
		Return(bookingRepo.ErrSlotTaken)

	engine := newTestEngine(spots, bookings)
	booking, err := engine.CreateBooking(context.Background(), "renter-9", "spot-1", testMonday, 10, 2)

	assert.Nil(t, booking)
	engineErr, ok := AsEngineError(err)
	require.True(t, ok)
	assert.Equal(t, CodeUnavailable, engineErr.Code)
}

func TestCreateBooking_CommitFailureIsPersistenceError(t *testing.T) {
	spots := new(MockSpotRepo)
	bookings := new(MockBookingRepo)
	spots.On("GetActiveByID", mock.Anything, "spot-1").Return(testSpot(), nil)
	bookings.On("GetConfirmedBySpotAndDate", mock.Anything, "spot-1", testMonday).
		Return([]models.Booking{}, nil)
	bookings.On("CreateConfirmed", mock.Anything, mock.AnythingOfType("*models.Booking")).
		Return(errors.New("connection reset"))

	engine := newTestEngine(spots, bookings)
	booking, err := engine.CreateBooking(context.Background(), "renter-9", "spot-1", testMonday, 10, 2)

	assert.Nil(t, booking)
	engineErr, ok := AsEngineError(err)
	require.True(t, ok)
	assert.Equal(t, CodePersistence, engineErr.Code)
	assert.Contains(t, engineErr.Message, "retry")
}

func TestCreateBooking_ConcurrentRequestsBookExactlyOnce(t *testing.T) {
	store := &fakeBookingStore{}
	engine := &DefaultAvailabilityEngine{
		SpotRepo:    &stubSpotRepo{spot: testSpot()},
		BookingRepo: store,
	}

	const attempts = 16
	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = engine.CreateBooking(context.Background(), "renter-9", "spot-1", testMonday, 10, 2)
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		engineErr, ok := AsEngineError(err)
		require.True(t, ok)
		assert.Equal(t, CodeUnavailable, engineErr.Code)
		conflicted++
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicted)

	stored, err := store.GetConfirmedBySpotAndDate(context.Background(), "spot-1", testMonday)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 10, stored[0].StartHour)
	assert.Equal(t, 12, stored[0].EndHour)
}

func TestGetBooking_NotFound(t *testing.T) {
	spots := new(MockSpotRepo)
	bookings := new(MockBookingRepo)
	bookings.On("GetByID", mock.Anything, "nope").Return(nil, bookingRepo.ErrNotFound)

	engine := newTestEngine(spots, bookings)
	booking, err := engine.GetBooking(context.Background(), "nope")

	assert.Nil(t, booking)
	engineErr, ok := AsEngineError(err)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, engineErr.Code)
}

func TestListRenterBookings_RequiresIdentity(t *testing.T) {
	engine := newTestEngine(new(MockSpotRepo), new(MockBookingRepo))
	result, err := engine.ListRenterBookings(context.Background(), "")

	assert.Nil(t, result)
	engineErr, ok := AsEngineError(err)
	require.True(t, ok)
	assert.Equal(t, CodeNotAuthenticated, engineErr.Code)
}

func TestRoundPrice(t *testing.T) {
	assert.Equal(t, 11.0, RoundPrice(5.50*2))
	assert.Equal(t, 0.3, RoundPrice(0.1+0.2))
	assert.Equal(t, 7.13, RoundPrice(7.125))
	assert.Equal(t, 0.0, RoundPrice(0))
}
