package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"carhive/config"
	bookingRepo "carhive/database/repository/booking"
	notificationRepo "carhive/database/repository/notification"
	"carhive/models"
	"carhive/services/tasks"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(bookings bookingRepo.BookingRepository, notifications notificationRepo.NotificationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(bookings, notifications))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(bookings bookingRepo.BookingRepository, notifications notificationRepo.NotificationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		// A cancelled booking needs no reminder; the task is simply dropped.
		b, err := bookings.GetByID(p.BookingID)
		if err != nil {
			log.Printf("[ReminderHandler] failed to load booking %s: %v", p.BookingID, err)
			return err
		}
		if b == nil || !b.IsActive() {
			log.Printf("[ReminderHandler] booking %s no longer active, skipping reminder", p.BookingID)
			return nil
		}

		n := &models.Notification{
			ID:        uuid.New().String(),
			UserID:    p.UserID,
			BookingID: p.BookingID,
			Title:     "Pickup reminder",
			Body:      "Your rental pickup is scheduled for " + p.PickupDate,
			SentAt:    time.Now(),
		}
		if err := notifications.Create(n); err != nil {
			log.Printf("[ReminderHandler] failed to record notification: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] reminder delivered for booking %s (user %s)", p.BookingID, p.UserID)
		return nil
	}
}
