package handlers

import (
	"net/http"

	notificationRepo "carhive/database/repository/notification"
	"carhive/models"
	userSvc "carhive/services/user"
	"carhive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account registration, sign-in and profile management.
type UserHandler struct {
	Service       userSvc.UserService
	Notifications notificationRepo.NotificationRepository
}

func NewUserHandler(svc userSvc.UserService, notifications notificationRepo.NotificationRepository) *UserHandler {
	return &UserHandler{Service: svc, Notifications: notifications}
}

// RegisterUserHandler handles POST /api/users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var in models.UserRegistration
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Service.Register(in)
	if err != nil {
		if userSvc.ErrCode(err) == userSvc.CodeEmailTaken {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		utils.GetLogger().Error("registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /api/users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var in models.UserLogin
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Service.SignIn(in)
	if err != nil {
		if userSvc.ErrCode(err) == userSvc.CodeInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		utils.GetLogger().Error("sign in failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign in failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMeHandler handles GET /api/users/me.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	userID := c.GetString("userID")

	usr, err := h.Service.GetUserByID(userID)
	if err != nil {
		utils.GetLogger().Error("user not found", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateMeHandler handles PUT /api/users/me.
func (h *UserHandler) UpdateMeHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var in models.UserUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usr, err := h.Service.UpdateProfile(userID, in)
	if err != nil {
		utils.GetLogger().Error("profile update failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// GetMyNotificationsHandler handles GET /api/users/me/notifications.
func (h *UserHandler) GetMyNotificationsHandler(c *gin.Context) {
	userID := c.GetString("userID")

	notifications, err := h.Notifications.GetByUser(userID)
	if err != nil {
		utils.GetLogger().Error("failed to list notifications", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notifications"})
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	c.JSON(http.StatusOK, notifications)
}

// SignOutHandler handles POST /api/users/logout.
func (h *UserHandler) SignOutHandler(c *gin.Context) {
	token := c.GetString("authToken")

	if err := h.Service.SignOut(token); err != nil {
		utils.GetLogger().Error("sign out failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign out failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
