package booking

import "carhive/models"

// BookingService is the public contract for the booking subsystem: the record
// store operations plus the availability and pricing engine.
type BookingService interface {
	// CreateBooking runs the full workflow: date validation, availability
	// check, pricing, persist. No partial state survives a failure.
	CreateBooking(userID string, in models.BookingInput) (*models.Booking, error)
	// CancelBooking marks a booking cancelled. Unknown ids are benign:
	// (false, nil), nothing altered. Re-cancelling succeeds idempotently.
	CancelBooking(bookingID string) (bool, error)
	// GetBooking returns a booking, or nil when the id is unknown.
	GetBooking(bookingID string) (*models.Booking, error)
	GetAllBookings() ([]models.Booking, error)
	GetUserBookings(userID string) ([]models.Booking, error)
	// ValidateDateRange exposes the engine's precondition check.
	ValidateDateRange(pickupDate, returnDate string) bool
	// CheckAvailability exposes the engine's overlap check.
	CheckAvailability(carID, pickupDate, returnDate string) (bool, error)
	// QuoteBooking exposes the engine's price breakdown.
	QuoteBooking(carID, pickupDate, returnDate string) (*models.Quote, error)
}
