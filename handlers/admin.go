package handlers

import (
	"net/http"

	"carhive/models"
	adminSvc "carhive/services/admin"
	"carhive/services/booking"
	userSvc "carhive/services/user"
	"carhive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes operator sign-in and oversight endpoints.
type AdminHandler struct {
	AdminService   adminSvc.AdminService
	UserService    userSvc.UserService
	BookingService booking.BookingService
}

func NewAdminHandler(admin adminSvc.AdminService, users userSvc.UserService, bookings booking.BookingService) *AdminHandler {
	return &AdminHandler{
		AdminService:   admin,
		UserService:    users,
		BookingService: bookings,
	}
}

// LoginHandler handles POST /api/admin/login.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var in models.AdminLogin
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.AdminService.Authenticate(in)
	if err != nil {
		if userSvc.ErrCode(err) == userSvc.CodeInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin credentials"})
			return
		}
		utils.GetLogger().Error("admin sign in failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign in failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProfileHandler handles GET /api/admin/me.
func (h *AdminHandler) ProfileHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.AdminService.Profile())
}

// GetAllUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers()
	if err != nil {
		utils.GetLogger().Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// GetAllBookingsHandler handles GET /api/admin/bookings.
func (h *AdminHandler) GetAllBookingsHandler(c *gin.Context) {
	bookings, err := h.BookingService.GetAllBookings()
	if err != nil {
		utils.GetLogger().Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// SignOutHandler handles POST /api/admin/logout.
func (h *AdminHandler) SignOutHandler(c *gin.Context) {
	token := c.GetString("authToken")

	if err := h.AdminService.SignOut(token); err != nil {
		utils.GetLogger().Error("admin sign out failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign out failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
