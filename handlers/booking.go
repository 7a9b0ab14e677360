package handlers

import (
	"net/http"

	"carhive/models"
	"carhive/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking workflow over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID := c.GetString("userID")

	var in models.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newBooking, err := h.Service.CreateBooking(userID, in)
	if err != nil {
		switch booking.ErrCode(err) {
		case booking.CodeInvalidDateRange:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Return date must be after pickup date"})
		case booking.CodeCarUnavailable:
			c.JSON(http.StatusConflict, gin.H{"error": "Car is not available for the selected dates"})
		default:
			h.Logger.Error("failed to create booking", zap.String("userID", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, newBooking)
}

// GetMyBookings handles GET /api/bookings.
func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	userID := c.GetString("userID")

	bookings, err := h.Service.GetUserBookings(userID)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// CancelBooking handles DELETE /api/bookings/:id. Users may only cancel their
// own bookings; anything else reads as not found.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID := c.GetString("userID")
	bookingID := c.Param("id")

	b, err := h.Service.GetBooking(bookingID)
	if err != nil {
		h.Logger.Error("failed to fetch booking", zap.String("bookingID", bookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		return
	}
	if b == nil || b.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	found, err := h.Service.CancelBooking(bookingID)
	if err != nil {
		h.Logger.Error("failed to cancel booking", zap.String("bookingID", bookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}

// CheckAvailability handles GET /api/bookings/availability.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	carID := c.Query("carId")
	pickupDate := c.Query("pickupDate")
	returnDate := c.Query("returnDate")

	if carID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "carId is required"})
		return
	}
	if !h.Service.ValidateDateRange(pickupDate, returnDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Return date must be after pickup date"})
		return
	}

	available, err := h.Service.CheckAvailability(carID, pickupDate, returnDate)
	if err != nil {
		h.Logger.Error("failed to check availability", zap.String("carID", carID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

// QuoteBooking handles GET /api/bookings/quote.
func (h *BookingHandler) QuoteBooking(c *gin.Context) {
	carID := c.Query("carId")
	pickupDate := c.Query("pickupDate")
	returnDate := c.Query("returnDate")

	if carID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "carId is required"})
		return
	}
	if !h.Service.ValidateDateRange(pickupDate, returnDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Return date must be after pickup date"})
		return
	}

	quote, err := h.Service.QuoteBooking(carID, pickupDate, returnDate)
	if err != nil {
		h.Logger.Error("failed to quote booking", zap.String("carID", carID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to quote booking"})
		return
	}
	c.JSON(http.StatusOK, quote)
}
