package booking_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"carhive/models"
	"carhive/services/booking"
)

// memBookingRepo is an in-memory BookingRepository for tests.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (m *memBookingRepo) GetAll() ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Booking, len(m.bookings))
	copy(out, m.bookings)
	return out, nil
}

func (m *memBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookingRepo) GetActiveByCar(carID string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Booking
	for _, b := range m.bookings {
		if b.CarID == carID && b.Status == models.BookingStatusActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookingRepo) GetByID(id string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			b := m.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (m *memBookingRepo) Create(b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.CreatedAt = time.Now()
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *memBookingRepo) Cancel(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			now := time.Now()
			m.bookings[i].Status = models.BookingStatusCancelled
			m.bookings[i].CancelledAt = &now
			return true, nil
		}
	}
	return false, nil
}

// memCarRepo is an in-memory CarRepository for tests.
type memCarRepo struct {
	mu   sync.Mutex
	cars map[string]models.Car
}

func newMemCarRepo(cars ...models.Car) *memCarRepo {
	m := &memCarRepo{cars: make(map[string]models.Car)}
	for _, c := range cars {
		m.cars[c.ID] = c
	}
	return m
}

func (m *memCarRepo) GetAll() ([]models.Car, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Car
	for _, c := range m.cars {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCarRepo) GetByID(id string) (*models.Car, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cars[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memCarRepo) Create(c *models.Car) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cars[c.ID] = *c
	return nil
}

func (m *memCarRepo) Update(c *models.Car) (*models.Car, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cars[c.ID]; !ok {
		return nil, nil
	}
	m.cars[c.ID] = *c
	return c, nil
}

func (m *memCarRepo) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cars, id)
	return nil
}

func (m *memCarRepo) Count() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.cars)), nil
}

func testEngine(existing []models.Booking, cars ...models.Car) *booking.Engine {
	return &booking.Engine{
		Bookings: &memBookingRepo{bookings: existing},
		Cars:     newMemCarRepo(cars...),
	}
}

func activeBooking(carID, pickup, ret string) models.Booking {
	return models.Booking{
		ID:         fmt.Sprintf("b-%s-%s", pickup, ret),
		UserID:     "u1",
		CarID:      carID,
		PickupDate: pickup,
		ReturnDate: ret,
		Status:     models.BookingStatusActive,
	}
}

func TestValidateDateRange(t *testing.T) {
	e := testEngine(nil)

	cases := []struct {
		name   string
		pickup string
		ret    string
		want   bool
	}{
		{"valid range", "2024-06-01", "2024-06-03", true},
		{"same day", "2024-06-01", "2024-06-01", false},
		{"reversed", "2024-06-03", "2024-06-01", false},
		{"missing pickup", "", "2024-06-03", false},
		{"missing return", "2024-06-01", "", false},
		{"garbage pickup", "yesterday", "2024-06-03", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.ValidateDateRange(tc.pickup, tc.ret); got != tc.want {
				t.Fatalf("ValidateDateRange(%q, %q) = %v; want %v", tc.pickup, tc.ret, got, tc.want)
			}
		})
	}
}

func TestCalculateTotal(t *testing.T) {
	car := models.Car{ID: "c1", Name: "Toyota Camry", Brand: "Toyota", PricePerDay: 100}
	e := testEngine(nil, car)

	// 2 whole days at 100/day plus 10% tax.
	total, err := e.CalculateTotal("c1", "2024-06-01", "2024-06-03")
	if err != nil {
		t.Fatalf("CalculateTotal error: %v", err)
	}
	if total != 220 {
		t.Fatalf("CalculateTotal = %v; want 220", total)
	}
}

func TestCalculateTotalNeverBelowOneDay(t *testing.T) {
	car := models.Car{ID: "c1", PricePerDay: 100}
	e := testEngine(nil, car)

	total, err := e.CalculateTotal("c1", "2024-06-01", "2024-06-01")
	if err != nil {
		t.Fatalf("CalculateTotal error: %v", err)
	}
	if total != 110 {
		t.Fatalf("CalculateTotal for same-day span = %v; want one-day minimum 110", total)
	}
}

func TestCalculateTotalUnknownCar(t *testing.T) {
	e := testEngine(nil)

	total, err := e.CalculateTotal("ghost", "2024-06-01", "2024-06-03")
	if err != nil {
		t.Fatalf("CalculateTotal error: %v", err)
	}
	if total != 0 {
		t.Fatalf("CalculateTotal for unknown car = %v; want 0", total)
	}
}

func TestQuoteBreakdown(t *testing.T) {
	car := models.Car{ID: "c1", PricePerDay: 45}
	e := testEngine(nil, car)

	q, err := e.Quote("c1", "2024-06-10", "2024-06-14")
	if err != nil {
		t.Fatalf("Quote error: %v", err)
	}
	if q.Days != 4 {
		t.Fatalf("Quote days = %d; want 4", q.Days)
	}
	if q.Subtotal != 180 {
		t.Fatalf("Quote subtotal = %v; want 180", q.Subtotal)
	}
	if q.Tax != 18 {
		t.Fatalf("Quote tax = %v; want 18", q.Tax)
	}
	if q.Total != 198 {
		t.Fatalf("Quote total = %v; want 198", q.Total)
	}
}

func TestIsAvailableOverlapCases(t *testing.T) {
	existing := []models.Booking{activeBooking("c1", "2024-06-10", "2024-06-15")}
	e := testEngine(existing, models.Car{ID: "c1", PricePerDay: 50})

	cases := []struct {
		name   string
		pickup string
		ret    string
		want   bool
	}{
		{"identical range", "2024-06-10", "2024-06-15", false},
		{"nested range", "2024-06-11", "2024-06-13", false},
		{"overlaps start", "2024-06-08", "2024-06-11", false},
		{"overlaps end", "2024-06-14", "2024-06-18", false},
		{"contains existing", "2024-06-08", "2024-06-18", false},
		{"pickup on return day", "2024-06-15", "2024-06-18", false},
		{"return on pickup day", "2024-06-08", "2024-06-10", false},
		{"one-day gap after", "2024-06-16", "2024-06-18", true},
		{"one-day gap before", "2024-06-07", "2024-06-09", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.IsAvailable("c1", tc.pickup, tc.ret)
			if err != nil {
				t.Fatalf("IsAvailable error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("IsAvailable(%q, %q) = %v; want %v", tc.pickup, tc.ret, got, tc.want)
			}
		})
	}
}

func TestIsAvailableIgnoresCancelled(t *testing.T) {
	cancelled := activeBooking("c1", "2024-06-10", "2024-06-15")
	cancelled.Status = models.BookingStatusCancelled
	e := testEngine([]models.Booking{cancelled}, models.Car{ID: "c1", PricePerDay: 50})

	available, err := e.IsAvailable("c1", "2024-06-10", "2024-06-15")
	if err != nil {
		t.Fatalf("IsAvailable error: %v", err)
	}
	if !available {
		t.Fatal("IsAvailable = false; cancelled bookings must not block availability")
	}
}

func TestIsAvailableOtherCarUnaffected(t *testing.T) {
	existing := []models.Booking{activeBooking("c1", "2024-06-10", "2024-06-15")}
	e := testEngine(existing, models.Car{ID: "c2", PricePerDay: 50})

	available, err := e.IsAvailable("c2", "2024-06-10", "2024-06-15")
	if err != nil {
		t.Fatalf("IsAvailable error: %v", err)
	}
	if !available {
		t.Fatal("IsAvailable = false; bookings on another car must not block")
	}
}
