package models

import "time"

// Notification is a delivered reminder, written by the reminder worker.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	BookingID string    `bson:"booking_id" json:"bookingId"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	SentAt    time.Time `bson:"sent_at" json:"sentAt"`
}

// ReminderPayload is the asynq task payload for a pickup reminder.
type ReminderPayload struct {
	BookingID  string `json:"bookingId"`
	UserID     string `json:"userId"`
	CarID      string `json:"carId"`
	PickupDate string `json:"pickupDate"`
}
