package booking

import (
	"math"
	"time"

	bookingRepo "carhive/database/repository/booking"
	carRepo "carhive/database/repository/car"
	"carhive/models"
)

// TaxRate is the flat tax applied on every rental subtotal.
const TaxRate = 0.10

// Engine decides whether a proposed rental range may be booked and what it
// costs. All of its operations are read-only; persisting the result is the
// booking service's job.
type Engine struct {
	Bookings bookingRepo.BookingRepository
	Cars     carRepo.CarRepository
}

// ValidateDateRange reports whether both dates are present, parseable and the
// return date falls strictly after the pickup date. It is the precondition for
// IsAvailable and Quote; their results are unreliable for ranges that fail it.
func (e *Engine) ValidateDateRange(pickupDate, returnDate string) bool {
	pickup, ok := parseDate(pickupDate)
	if !ok {
		return false
	}
	ret, ok := parseDate(returnDate)
	if !ok {
		return false
	}
	return ret.After(pickup)
}

// IsAvailable reports whether the proposed range conflicts with no active
// booking for the car. Boundaries are inclusive: a booking returning on day N
// blocks a new pickup on day N. Same-day turnover is deliberately disallowed.
func (e *Engine) IsAvailable(carID, pickupDate, returnDate string) (bool, error) {
	pickup, _ := parseDate(pickupDate)
	ret, _ := parseDate(returnDate)

	existing, err := e.Bookings.GetActiveByCar(carID)
	if err != nil {
		return false, NewStorageError(err)
	}
	for i := range existing {
		exPickup, ok := parseDate(existing[i].PickupDate)
		if !ok {
			continue
		}
		exReturn, ok := parseDate(existing[i].ReturnDate)
		if !ok {
			continue
		}
		if rangesOverlap(pickup, ret, exPickup, exReturn) {
			return false, nil
		}
	}
	return true, nil
}

// Quote prices the proposed range: whole days (never fewer than one) times the
// car's daily rate, plus the flat tax. The total keeps full precision; rounding
// to two decimals is presentation-only. An unknown car yields a zero quote
// rather than an error.
func (e *Engine) Quote(carID, pickupDate, returnDate string) (*models.Quote, error) {
	car, err := e.Cars.GetByID(carID)
	if err != nil {
		return nil, NewStorageError(err)
	}
	if car == nil {
		return &models.Quote{CarID: carID}, nil
	}

	days := rentalDays(pickupDate, returnDate)
	subtotal := float64(days) * car.PricePerDay
	tax := subtotal * TaxRate

	return &models.Quote{
		CarID:    carID,
		Days:     days,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}, nil
}

// CalculateTotal returns just the total for the proposed range, or 0 when the
// car does not resolve.
func (e *Engine) CalculateTotal(carID, pickupDate, returnDate string) (float64, error) {
	quote, err := e.Quote(carID, pickupDate, returnDate)
	if err != nil {
		return 0, err
	}
	return quote.Total, nil
}

// parseDate parses a calendar date in "YYYY-MM-DD" form.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// rentalDays counts the whole days spanned by the range, rounding partial days
// up and flooring at one so a same-day range never prices as a free rental.
func rentalDays(pickupDate, returnDate string) int {
	pickup, ok := parseDate(pickupDate)
	if !ok {
		return 1
	}
	ret, ok := parseDate(returnDate)
	if !ok {
		return 1
	}
	days := int(math.Ceil(math.Abs(ret.Sub(pickup).Hours()) / 24))
	if days < 1 {
		return 1
	}
	return days
}

// rangesOverlap reports whether two closed date intervals conflict: either
// endpoint of the new range inside the existing one, or the new range fully
// containing it.
func rangesOverlap(newPickup, newReturn, exPickup, exReturn time.Time) bool {
	if within(newPickup, exPickup, exReturn) || within(newReturn, exPickup, exReturn) {
		return true
	}
	return !newPickup.After(exPickup) && !newReturn.Before(exReturn)
}

// within reports whether t falls inside the closed interval [start, end].
func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
