// File: carhive/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carhive/config"
	"carhive/cron"
	"carhive/database"
	bookingRepoPkg "carhive/database/repository/booking"
	carRepoPkg "carhive/database/repository/car"
	notificationRepoPkg "carhive/database/repository/notification"
	userRepoPkg "carhive/database/repository/user"
	"carhive/handlers"
	"carhive/middleware"
	"carhive/routes"
	adminSvc "carhive/services/admin"
	"carhive/services/booking"
	carSvc "carhive/services/car"
	userSvc "carhive/services/user"
	"carhive/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	carRepo := carRepoPkg.NewMongoCarRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	if err := carRepoPkg.EnsureSeedData(carRepo); err != nil {
		logger.Sugar().Fatalf("main: failed to seed car catalog: %v", err)
	}

	// reminder queue client.
	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	defer taskClient.Close()

	// services.
	userService := &userSvc.DefaultUserService{
		Repo:     userRepo,
		Sessions: utils.RedisSessionStore{},
	}
	carService := &carSvc.DefaultCarService{
		Repo: carRepo,
	}
	availabilityEngine := &booking.Engine{
		Bookings: bookingRepo,
		Cars:     carRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:   bookingRepo,
		Engine: availabilityEngine,
		Tasks:  taskClient,
	}
	adminService := &adminSvc.DefaultAdminService{}

	// handlers.
	carHandler := handlers.NewCarHandler(carService)
	userHandler := handlers.NewUserHandler(userService, notificationRepo)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	adminHandler := handlers.NewAdminHandler(adminService, userService, bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Car endpoints.
		ListCars:   carHandler.ListCars,
		GetCar:     carHandler.GetCar,
		ListBrands: carHandler.ListBrands,
		AddCar:     carHandler.AddCar,
		UpdateCar:  carHandler.UpdateCar,
		DeleteCar:  carHandler.DeleteCar,

		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
		GetMeHandler:            userHandler.GetMeHandler,
		UpdateMeHandler:         userHandler.UpdateMeHandler,
		GetMyNotifications:      userHandler.GetMyNotificationsHandler,
		SignOutHandler:          userHandler.SignOutHandler,

		// Booking endpoints.
		CreateBooking:     bookingHandler.CreateBooking,
		GetMyBookings:     bookingHandler.GetMyBookings,
		CancelBooking:     bookingHandler.CancelBooking,
		CheckAvailability: bookingHandler.CheckAvailability,
		QuoteBooking:      bookingHandler.QuoteBooking,

		// Admin endpoints.
		AdminHandler: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the pickup-reminder worker.
	cron.InitReminderWorker(bookingRepo, notificationRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
