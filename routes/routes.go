package routes

import (
	"net/http"
	"time"

	"carhive/handlers"
	"carhive/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCarRoutes registers catalog endpoints. Browsing is public; fleet
// changes require the admin role.
func RegisterCarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cars")
	{
		api.GET("", hb.ListCars)
		api.GET("/brands", hb.ListBrands)
		api.GET("/:id", hb.GetCar)

		// Fleet management (admin only).
		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("", hb.AddCar)
		protected.PUT("/:id", hb.UpdateCar)
		protected.DELETE("/:id", hb.DeleteCar)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/me", hb.GetMeHandler)
		api.PUT("/me", hb.UpdateMeHandler)
		api.GET("/me/notifications", hb.GetMyNotifications)
		api.POST("/logout", hb.SignOutHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.AdminHandler.LoginHandler)

		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/me", hb.AdminHandler.ProfileHandler)
		adminGroup.GET("/users", hb.AdminHandler.GetAllUsersHandler)
		adminGroup.GET("/bookings", hb.AdminHandler.GetAllBookingsHandler)
		adminGroup.POST("/logout", hb.AdminHandler.SignOutHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Carhive"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCarRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
