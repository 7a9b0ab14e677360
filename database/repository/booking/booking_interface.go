package bookingRepo

import "carhive/models"

// BookingRepository is the durable record of all bookings. It performs no
// date or availability validation; the booking service gates every create
// behind the availability engine.
type BookingRepository interface {
	// GetAll returns every booking, active and cancelled alike.
	GetAll() ([]models.Booking, error)
	// GetByUser returns all bookings made by the given user.
	GetByUser(userID string) ([]models.Booking, error)
	// GetActiveByCar returns the active bookings for a car. This is exactly
	// the set the availability engine checks overlaps against.
	GetActiveByCar(carID string) ([]models.Booking, error)
	// GetByID returns a booking, or nil when the id is unknown.
	GetByID(id string) (*models.Booking, error)
	// Create persists a new booking record, stamping CreatedAt.
	Create(booking *models.Booking) error
	// Cancel marks a booking cancelled and stamps CancelledAt. An unknown id
	// yields (false, nil); re-cancelling an already cancelled booking
	// succeeds and re-stamps CancelledAt.
	Cancel(id string) (bool, error)
}
