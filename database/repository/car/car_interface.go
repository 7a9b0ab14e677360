package carRepo

import "carhive/models"

// CarRepository is the fleet catalog data access layer.
type CarRepository interface {
	GetAll() ([]models.Car, error)
	// GetByID returns a car, or nil when the id is unknown.
	GetByID(id string) (*models.Car, error)
	Create(car *models.Car) error
	// Update applies the changes and returns the updated car, or nil when
	// the id is unknown.
	Update(car *models.Car) (*models.Car, error)
	Delete(id string) error
	Count() (int64, error)
}
