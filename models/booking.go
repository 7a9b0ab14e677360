package models

import "time"

// Booking status machine: active bookings may be cancelled; cancelled bookings
// never transition back.
const (
	BookingStatusActive    = "active"
	BookingStatusCancelled = "cancelled"
)

// DateLayout is the calendar-date format used for pickup and return dates.
const DateLayout = "2006-01-02"

// Booking represents a confirmed rental record.
type Booking struct {
	ID          string     `bson:"id" json:"id"`                       // Unique booking identifier (UUID)
	UserID      string     `bson:"user_id" json:"userId"`              // User who made the booking
	CarID       string     `bson:"car_id" json:"carId"`                // Car that was booked
	PickupDate  string     `bson:"pickup_date" json:"pickupDate"`      // "YYYY-MM-DD"
	ReturnDate  string     `bson:"return_date" json:"returnDate"`      // "YYYY-MM-DD"
	Total       float64    `bson:"total" json:"total"`                 // Price fixed at creation time; never recomputed
	Status      string     `bson:"status" json:"status"`               // "active" or "cancelled"
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`        // Stamped by the store
	CancelledAt *time.Time `bson:"cancelled_at,omitempty" json:"cancelledAt,omitempty"`
}

// IsActive reports whether the booking still counts toward availability.
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusActive
}

// BookingInput is the payload for creating a booking.
type BookingInput struct {
	CarID      string `json:"carId" binding:"required"`
	PickupDate string `json:"pickupDate" binding:"required"`
	ReturnDate string `json:"returnDate" binding:"required"`
}

// Quote is the engine's price breakdown for a proposed booking.
type Quote struct {
	CarID    string  `json:"carId"`
	Days     int     `json:"days"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}
