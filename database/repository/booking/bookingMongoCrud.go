package bookingRepo

import (
	"fmt"
	"time"

	"carhive/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// Cancel marks a booking cancelled. An unknown id is not an error: the
// collection stays untouched and (false, nil) is returned. Cancelling an
// already cancelled booking succeeds again and re-stamps cancelled_at.
func (r *MongoBookingRepo) Cancel(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"status":       models.BookingStatusCancelled,
		"cancelled_at": now,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return false, fmt.Errorf("failed to cancel booking with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return false, nil
	}
	return true, nil
}
