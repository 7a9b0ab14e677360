package booking_test

import (
	"sync"
	"testing"

	"carhive/models"
	"carhive/services/booking"

	"github.com/stretchr/testify/require"
)

func newTestService(repo *memBookingRepo, cars *memCarRepo) *booking.DefaultBookingService {
	return &booking.DefaultBookingService{
		Repo:   repo,
		Engine: &booking.Engine{Bookings: repo, Cars: cars},
	}
}

func TestCreateBookingWorkflow(t *testing.T) {
	repo := &memBookingRepo{}
	cars := newMemCarRepo(models.Car{ID: "c1", Name: "Toyota Camry", PricePerDay: 100})
	svc := newTestService(repo, cars)

	b, err := svc.CreateBooking("u1", models.BookingInput{
		CarID:      "c1",
		PickupDate: "2024-06-01",
		ReturnDate: "2024-06-03",
	})
	require.NoError(t, err)
	require.NotEmpty(t, b.ID)
	require.Equal(t, models.BookingStatusActive, b.Status)
	require.Equal(t, 220.0, b.Total)
	require.False(t, b.CreatedAt.IsZero())

	// An overlapping second request is rejected and leaves no record behind.
	_, err = svc.CreateBooking("u2", models.BookingInput{
		CarID:      "c1",
		PickupDate: "2024-06-02",
		ReturnDate: "2024-06-04",
	})
	require.Error(t, err)
	require.Equal(t, booking.CodeCarUnavailable, booking.ErrCode(err))

	all, err := svc.GetAllBookings()
	require.NoError(t, err)
	require.Len(t, all, 1)

	// Cancelling the first booking frees the range for the retry.
	found, err := svc.CancelBooking(b.ID)
	require.NoError(t, err)
	require.True(t, found)

	retry, err := svc.CreateBooking("u2", models.BookingInput{
		CarID:      "c1",
		PickupDate: "2024-06-02",
		ReturnDate: "2024-06-04",
	})
	require.NoError(t, err)
	require.Equal(t, 220.0, retry.Total)
}

func TestCreateBookingInvalidRange(t *testing.T) {
	repo := &memBookingRepo{}
	svc := newTestService(repo, newMemCarRepo(models.Car{ID: "c1", PricePerDay: 100}))

	cases := []models.BookingInput{
		{CarID: "c1", PickupDate: "2024-06-01", ReturnDate: "2024-06-01"},
		{CarID: "c1", PickupDate: "2024-06-03", ReturnDate: "2024-06-01"},
		{CarID: "c1", PickupDate: "", ReturnDate: "2024-06-01"},
	}
	for _, in := range cases {
		_, err := svc.CreateBooking("u1", in)
		require.Error(t, err)
		require.Equal(t, booking.CodeInvalidDateRange, booking.ErrCode(err))
	}

	all, err := svc.GetAllBookings()
	require.NoError(t, err)
	require.Empty(t, all, "rejected bookings must not be persisted")
}

func TestCancelBookingUnknownID(t *testing.T) {
	repo := &memBookingRepo{bookings: []models.Booking{activeBooking("c1", "2024-06-01", "2024-06-03")}}
	svc := newTestService(repo, newMemCarRepo())

	found, err := svc.CancelBooking("nope")
	require.NoError(t, err)
	require.False(t, found)

	all, err := svc.GetAllBookings()
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, models.BookingStatusActive, all[0].Status)
}

func TestCancelBookingIdempotent(t *testing.T) {
	b := activeBooking("c1", "2024-06-01", "2024-06-03")
	repo := &memBookingRepo{bookings: []models.Booking{b}}
	svc := newTestService(repo, newMemCarRepo())

	found, err := svc.CancelBooking(b.ID)
	require.NoError(t, err)
	require.True(t, found)

	found, err = svc.CancelBooking(b.ID)
	require.NoError(t, err)
	require.True(t, found, "second cancel succeeds as a no-op")

	got, err := svc.GetBooking(b.ID)
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusCancelled, got.Status)
	require.NotNil(t, got.CancelledAt)
}

// TestConcurrentCreateSameCar drives the check-then-act path from many
// goroutines; the per-car lock must let exactly one booking through.
func TestConcurrentCreateSameCar(t *testing.T) {
	repo := &memBookingRepo{}
	svc := newTestService(repo, newMemCarRepo(models.Car{ID: "c1", PricePerDay: 100}))

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking("u1", models.BookingInput{
				CarID:      "c1",
				PickupDate: "2024-06-01",
				ReturnDate: "2024-06-03",
			})
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.Equal(t, booking.CodeCarUnavailable, booking.ErrCode(err))
		}
	}
	require.Equal(t, 1, succeeded)

	all, err := svc.GetAllBookings()
	require.NoError(t, err)
	require.Len(t, all, 1)
}

// TestActiveBookingsNeverOverlap runs a mixed create/cancel sequence and
// checks the per-car invariant afterwards.
func TestActiveBookingsNeverOverlap(t *testing.T) {
	repo := &memBookingRepo{}
	svc := newTestService(repo, newMemCarRepo(models.Car{ID: "c1", PricePerDay: 10}))

	ranges := [][2]string{
		{"2024-07-01", "2024-07-03"},
		{"2024-07-02", "2024-07-05"}, // conflicts with the first
		{"2024-07-04", "2024-07-06"},
		{"2024-07-03", "2024-07-04"}, // conflicts with both neighbours
		{"2024-07-08", "2024-07-10"},
	}
	var created []string
	for _, r := range ranges {
		b, err := svc.CreateBooking("u1", models.BookingInput{CarID: "c1", PickupDate: r[0], ReturnDate: r[1]})
		if err == nil {
			created = append(created, b.ID)
		}
	}
	require.NotEmpty(t, created)

	// Cancel one and rebook inside its slot.
	found, err := svc.CancelBooking(created[0])
	require.NoError(t, err)
	require.True(t, found)
	_, err = svc.CreateBooking("u2", models.BookingInput{CarID: "c1", PickupDate: "2024-07-01", ReturnDate: "2024-07-02"})
	require.NoError(t, err)

	active, err := svc.Engine.Bookings.GetActiveByCar("c1")
	require.NoError(t, err)
	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			ok, err := overlapFree(active[i], active[j])
			require.NoError(t, err)
			require.True(t, ok, "active bookings %s and %s overlap", active[i].ID, active[j].ID)
		}
	}
}

// overlapFree checks a pair through the engine by probing one range against a
// repo holding only the other.
func overlapFree(a, b models.Booking) (bool, error) {
	probe := &booking.Engine{
		Bookings: &memBookingRepo{bookings: []models.Booking{a}},
		Cars:     newMemCarRepo(),
	}
	return probe.IsAvailable(b.CarID, b.PickupDate, b.ReturnDate)
}
