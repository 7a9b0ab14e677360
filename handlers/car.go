package handlers

import (
	"net/http"

	"carhive/models"
	carSvc "carhive/services/car"
	"carhive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CarHandler exposes the fleet catalog over HTTP.
type CarHandler struct {
	Service carSvc.CarService
}

func NewCarHandler(svc carSvc.CarService) *CarHandler {
	return &CarHandler{Service: svc}
}

// ListCars handles GET /api/cars with optional filter query params.
func (h *CarHandler) ListCars(c *gin.Context) {
	filter := models.CarFilter{
		Search:       c.Query("search"),
		Brand:        c.Query("brand"),
		Price:        c.Query("price"),
		Transmission: c.Query("transmission"),
	}

	cars, err := h.Service.GetCars(filter)
	if err != nil {
		utils.GetLogger().Error("failed to list cars", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cars"})
		return
	}
	c.JSON(http.StatusOK, cars)
}

// GetCar handles GET /api/cars/:id.
func (h *CarHandler) GetCar(c *gin.Context) {
	id := c.Param("id")

	car, err := h.Service.GetCarByID(id)
	if err != nil {
		utils.GetLogger().Error("failed to fetch car", zap.String("carID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch car"})
		return
	}
	if car == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		return
	}
	c.JSON(http.StatusOK, car)
}

// ListBrands handles GET /api/cars/brands.
func (h *CarHandler) ListBrands(c *gin.Context) {
	brands, err := h.Service.Brands()
	if err != nil {
		utils.GetLogger().Error("failed to list brands", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list brands"})
		return
	}
	c.JSON(http.StatusOK, brands)
}

// AddCar handles POST /api/cars (admin only).
func (h *CarHandler) AddCar(c *gin.Context) {
	var in models.CarInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	car, err := h.Service.AddCar(in)
	if err != nil {
		utils.GetLogger().Error("failed to add car", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add car"})
		return
	}
	c.JSON(http.StatusCreated, car)
}

// UpdateCar handles PUT /api/cars/:id (admin only).
func (h *CarHandler) UpdateCar(c *gin.Context) {
	id := c.Param("id")

	var in models.CarInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	car, err := h.Service.UpdateCar(id, in)
	if err != nil {
		utils.GetLogger().Error("failed to update car", zap.String("carID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update car"})
		return
	}
	if car == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		return
	}
	c.JSON(http.StatusOK, car)
}

// DeleteCar handles DELETE /api/cars/:id (admin only).
func (h *CarHandler) DeleteCar(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.DeleteCar(id); err != nil {
		utils.GetLogger().Error("failed to delete car", zap.String("carID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete car"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Car deleted"})
}
