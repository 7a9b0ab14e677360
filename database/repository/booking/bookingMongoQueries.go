package bookingRepo

import (
	"fmt"
	"time"

	"carhive/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// findBookings runs a filter query and decodes the cursor.
func (r *MongoBookingRepo) findBookings(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}
	return bookings, nil
}

// GetAll retrieves every booking record.
func (r *MongoBookingRepo) GetAll() ([]models.Booking, error) {
	return r.findBookings(bson.M{})
}

// GetByUser retrieves all bookings made by a user.
func (r *MongoBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	return r.findBookings(bson.M{"user_id": userID})
}

// GetActiveByCar retrieves the active bookings for a car.
func (r *MongoBookingRepo) GetActiveByCar(carID string) ([]models.Booking, error) {
	return r.findBookings(bson.M{"car_id": carID, "status": models.BookingStatusActive})
}

// GetByID retrieves a booking by its unique ID, or nil when absent.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}
