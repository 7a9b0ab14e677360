package car

import (
	carRepo "carhive/database/repository/car"
	"carhive/models"
	"carhive/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CarService manages the rental fleet catalog.
type CarService interface {
	// GetCars lists the catalog, narrowed by the filter.
	GetCars(filter models.CarFilter) ([]models.Car, error)
	// GetCarByID returns a car, or nil when the id is unknown.
	GetCarByID(id string) (*models.Car, error)
	AddCar(in models.CarInput) (*models.Car, error)
	// UpdateCar applies the input and returns the updated car, or nil when
	// the id is unknown.
	UpdateCar(id string, in models.CarInput) (*models.Car, error)
	DeleteCar(id string) error
	// Brands returns the sorted distinct brands in the catalog.
	Brands() ([]string, error)
}

// DefaultCarService implements CarService.
type DefaultCarService struct {
	Repo carRepo.CarRepository
}

func (s *DefaultCarService) GetCars(filter models.CarFilter) ([]models.Car, error) {
	cars, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return Filter(cars, filter), nil
}

func (s *DefaultCarService) GetCarByID(id string) (*models.Car, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultCarService) AddCar(in models.CarInput) (*models.Car, error) {
	newCar := &models.Car{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Brand:        in.Brand,
		Type:         in.Type,
		PricePerDay:  in.PricePerDay,
		Seats:        in.Seats,
		FuelType:     in.FuelType,
		Transmission: in.Transmission,
		Image:        in.Image,
	}
	if err := s.Repo.Create(newCar); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("car added", zap.String("carID", newCar.ID), zap.String("name", newCar.Name))
	return newCar, nil
}

func (s *DefaultCarService) UpdateCar(id string, in models.CarInput) (*models.Car, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	existing.Name = in.Name
	existing.Brand = in.Brand
	existing.Type = in.Type
	existing.PricePerDay = in.PricePerDay
	existing.Seats = in.Seats
	existing.FuelType = in.FuelType
	existing.Transmission = in.Transmission
	if in.Image != "" {
		existing.Image = in.Image
	}
	return s.Repo.Update(existing)
}

func (s *DefaultCarService) DeleteCar(id string) error {
	return s.Repo.Delete(id)
}

func (s *DefaultCarService) Brands() ([]string, error) {
	cars, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return UniqueBrands(cars), nil
}
