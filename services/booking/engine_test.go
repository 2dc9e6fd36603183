package booking

import (
	"context"
	"sync"

	bookingRepo "parkbay/database/repository/booking"
	spotRepo "parkbay/database/repository/spot"
	"parkbay/models"

	"github.com/stretchr/testify/mock"
)

// Mock repositories
type MockSpotRepo struct{ mock.Mock }
type MockBookingRepo struct{ mock.Mock }

func (m *MockSpotRepo) GetByID(ctx context.Context, spotID string) (*models.Spot, error) {
	args := m.Called(ctx, spotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Spot), args.Error(1)
}

func (m *MockSpotRepo) GetActiveByID(ctx context.Context, spotID string) (*models.Spot, error) {
	args := m.Called(ctx, spotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Spot), args.Error(1)
}

func (m *MockSpotRepo) EnsureIndexes() error {
	return m.Called().Error(0)
}

func (m *MockBookingRepo) CreateConfirmed(ctx context.Context, booking *models.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetConfirmedBySpotAndDate(ctx context.Context, spotID, date string) ([]models.Booking, error) {
	args := m.Called(ctx, spotID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByRenter(ctx context.Context, renterID string) ([]models.Booking, error) {
	args := m.Called(ctx, renterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepo) CompletePastBookings(ctx context.Context, today string) (int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepo) EnsureIndexes() error {
	return m.Called().Error(0)
}

// testSpot is a Monday/Wednesday spot open 09:00-17:00 through 2026.
func testSpot() *models.Spot {
	return &models.Spot{
		ID:      "spot-1",
		OwnerID: "owner-1",
		Price:   5.50,
		Status:  models.SpotStatusActive,
		Schedule: models.WeeklySchedule{
			Days:       []models.Weekday{models.Monday, models.Wednesday},
			StartHour:  9,
			EndHour:    17,
			ValidFrom:  "2026-01-01",
			ValidUntil: "2026-12-31",
		},
	}
}

// Reference dates for testSpot: 2026-01-05 is a Monday, 2026-01-06 a
// Tuesday, 2026-01-07 a Wednesday.
const (
	testMonday    = "2026-01-05"
	testTuesday   = "2026-01-06"
	testWednesday = "2026-01-07"
)

func confirmed(id string, start, end int) models.Booking {
	return models.Booking{
		ID:            id,
		SpotID:        "spot-1",
		RenterID:      "renter-1",
		Date:          testMonday,
		StartHour:     start,
		EndHour:       end,
		DurationHours: end - start,
		Status:        models.BookingStatusConfirmed,
	}
}

// stubSpotRepo always resolves the same spot. Used by concurrency tests
// where testify mocks would serialize on expectations.
type stubSpotRepo struct {
	spot *models.Spot
}

func (s *stubSpotRepo) GetByID(context.Context, string) (*models.Spot, error) {
	return s.spot, nil
}

func (s *stubSpotRepo) GetActiveByID(context.Context, string) (*models.Spot, error) {
	return s.spot, nil
}

func (s *stubSpotRepo) EnsureIndexes() error { return nil }

var _ spotRepo.SpotRepository = (*stubSpotRepo)(nil)

// fakeBookingStore is an in-memory BookingRepository honouring the same
// atomic contract as the mongo implementation: the overlap check and the
// insert happen under one lock.
type fakeBookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (f *fakeBookingStore) CreateConfirmed(_ context.Context, booking *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		b := &f.bookings[i]
		if b.SpotID == booking.SpotID && b.Date == booking.Date &&
			b.Status == models.BookingStatusConfirmed &&
			b.Overlaps(booking.StartHour, booking.EndHour) {
			return bookingRepo.ErrSlotTaken
		}
	}
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookingStore) GetByID(_ context.Context, bookingID string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (f *fakeBookingStore) GetConfirmedBySpotAndDate(_ context.Context, spotID, date string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.SpotID == spotID && b.Date == date && b.Status == models.BookingStatusConfirmed {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) GetByRenter(_ context.Context, renterID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.RenterID == renterID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) CompletePastBookings(_ context.Context, today string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for i := range f.bookings {
		if f.bookings[i].Status == models.BookingStatusConfirmed && f.bookings[i].Date < today {
			f.bookings[i].Status = models.BookingStatusCompleted
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingStore) EnsureIndexes() error { return nil }

var _ bookingRepo.BookingRepository = (*fakeBookingStore)(nil)
