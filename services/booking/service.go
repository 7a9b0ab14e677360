package booking

import (
	"context"
	"time"

	bookingRepo "carhive/database/repository/booking"
	"carhive/models"
	"carhive/services/tasks"
	"carhive/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService on top of the booking
// repository and the availability engine.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRepository
	Engine *Engine
	// Tasks enqueues pickup reminders. Optional; reminders are skipped when nil.
	Tasks *asynq.Client

	locks carLockStore
}

// CreateBooking validates the range, checks availability, prices the rental
// and persists the record. The check and the insert hold the car's lock so
// two concurrent requests cannot both pass the availability check.
func (s *DefaultBookingService) CreateBooking(userID string, in models.BookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	if !s.Engine.ValidateDateRange(in.PickupDate, in.ReturnDate) {
		return nil, NewInvalidDateRangeError("return date must be after pickup date")
	}

	lock := s.locks.get(in.CarID)
	lock.Lock()
	defer lock.Unlock()

	available, err := s.Engine.IsAvailable(in.CarID, in.PickupDate, in.ReturnDate)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, NewCarUnavailableError("car is already booked for the selected dates")
	}

	quote, err := s.Engine.Quote(in.CarID, in.PickupDate, in.ReturnDate)
	if err != nil {
		return nil, err
	}

	newBooking := &models.Booking{
		ID:         uuid.New().String(),
		UserID:     userID,
		CarID:      in.CarID,
		PickupDate: in.PickupDate,
		ReturnDate: in.ReturnDate,
		Total:      quote.Total,
		Status:     models.BookingStatusActive,
	}
	if err := s.Repo.Create(newBooking); err != nil {
		return nil, NewStorageError(err)
	}

	s.scheduleReminder(newBooking)

	logger.Info("booking created",
		zap.String("bookingID", newBooking.ID),
		zap.String("carID", newBooking.CarID),
		zap.Float64("total", newBooking.Total))
	return newBooking, nil
}

// scheduleReminder enqueues a pickup-day reminder. Failures are logged and
// swallowed; a booking is never rolled back over a reminder.
func (s *DefaultBookingService) scheduleReminder(b *models.Booking) {
	if s.Tasks == nil {
		return
	}
	logger := utils.GetLogger()

	fireAt, ok := pickupTime(b.PickupDate)
	if !ok || fireAt.Before(time.Now()) {
		return
	}
	task, opts, err := tasks.NewReminderTask(models.ReminderPayload{
		BookingID:  b.ID,
		UserID:     b.UserID,
		CarID:      b.CarID,
		PickupDate: b.PickupDate,
	}, fireAt)
	if err != nil {
		logger.Warn("failed to build reminder task", zap.String("bookingID", b.ID), zap.Error(err))
		return
	}
	if _, err := s.Tasks.EnqueueContext(context.Background(), task, opts...); err != nil {
		logger.Warn("failed to enqueue reminder task", zap.String("bookingID", b.ID), zap.Error(err))
	}
}

// pickupTime resolves the reminder fire time for a pickup date (09:00 UTC on
// the day).
func pickupTime(pickupDate string) (time.Time, bool) {
	day, ok := parseDate(pickupDate)
	if !ok {
		return time.Time{}, false
	}
	return day.Add(9 * time.Hour), true
}

// CancelBooking marks the booking cancelled. (false, nil) means the id was
// unknown and nothing changed; cancelling twice succeeds both times.
func (s *DefaultBookingService) CancelBooking(bookingID string) (bool, error) {
	found, err := s.Repo.Cancel(bookingID)
	if err != nil {
		return false, NewStorageError(err)
	}
	return found, nil
}

// GetBooking returns a booking by id, or nil when unknown.
func (s *DefaultBookingService) GetBooking(bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, NewStorageError(err)
	}
	return b, nil
}

// GetAllBookings returns every booking record.
func (s *DefaultBookingService) GetAllBookings() ([]models.Booking, error) {
	bookings, err := s.Repo.GetAll()
	if err != nil {
		return nil, NewStorageError(err)
	}
	return bookings, nil
}

// GetUserBookings returns the bookings made by a user.
func (s *DefaultBookingService) GetUserBookings(userID string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByUser(userID)
	if err != nil {
		return nil, NewStorageError(err)
	}
	return bookings, nil
}

// ValidateDateRange exposes the engine's precondition check.
func (s *DefaultBookingService) ValidateDateRange(pickupDate, returnDate string) bool {
	return s.Engine.ValidateDateRange(pickupDate, returnDate)
}

// CheckAvailability exposes the engine's overlap check.
func (s *DefaultBookingService) CheckAvailability(carID, pickupDate, returnDate string) (bool, error) {
	return s.Engine.IsAvailable(carID, pickupDate, returnDate)
}

// QuoteBooking exposes the engine's price breakdown.
func (s *DefaultBookingService) QuoteBooking(carID, pickupDate, returnDate string) (*models.Quote, error) {
	return s.Engine.Quote(carID, pickupDate, returnDate)
}
