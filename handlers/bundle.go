package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handlers the route registration needs.
type HandlerBundle struct {
	// Car endpoints.
	ListCars   gin.HandlerFunc
	GetCar     gin.HandlerFunc
	ListBrands gin.HandlerFunc
	AddCar     gin.HandlerFunc
	UpdateCar  gin.HandlerFunc
	DeleteCar  gin.HandlerFunc

	// User endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetMeHandler            gin.HandlerFunc
	UpdateMeHandler         gin.HandlerFunc
	GetMyNotifications      gin.HandlerFunc
	SignOutHandler          gin.HandlerFunc

	// Booking endpoints.
	CreateBooking     gin.HandlerFunc
	GetMyBookings     gin.HandlerFunc
	CancelBooking     gin.HandlerFunc
	CheckAvailability gin.HandlerFunc
	QuoteBooking      gin.HandlerFunc

	// Admin endpoints.
	AdminHandler *AdminHandler
}
