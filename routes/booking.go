package routes

import (
	"carhive/handlers"
	"carhive/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware())
		bookingGroup.POST("", hb.CreateBooking)
		bookingGroup.GET("", hb.GetMyBookings)
		bookingGroup.GET("/availability", hb.CheckAvailability)
		bookingGroup.GET("/quote", hb.QuoteBooking)
		bookingGroup.DELETE("/:id", hb.CancelBooking)
	}
}
