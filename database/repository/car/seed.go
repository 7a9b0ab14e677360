package carRepo

import (
	"carhive/models"

	"github.com/google/uuid"
)

// sampleFleet is the starter catalog inserted into an empty database.
var sampleFleet = []models.Car{
	{
		Name:         "Toyota Camry",
		Brand:        "Toyota",
		Type:         models.CarTypeEconomy,
		PricePerDay:  45,
		Seats:        5,
		FuelType:     "petrol",
		Transmission: "automatic",
		Image:        "https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=800&q=80",
	},
	{
		Name:         "BMW 3 Series",
		Brand:        "BMW",
		Type:         models.CarTypeLuxury,
		PricePerDay:  120,
		Seats:        5,
		FuelType:     "petrol",
		Transmission: "automatic",
		Image:        "https://images.unsplash.com/photo-1555215695-3004980ad54e?w=800&q=80",
	},
	{
		Name:         "Toyota RAV4",
		Brand:        "Toyota",
		Type:         models.CarTypeSUV,
		PricePerDay:  65,
		Seats:        5,
		FuelType:     "hybrid",
		Transmission: "automatic",
		Image:        "https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=800&q=80",
	},
	{
		Name:         "Porsche 911",
		Brand:        "Porsche",
		Type:         models.CarTypeSports,
		PricePerDay:  250,
		Seats:        2,
		FuelType:     "petrol",
		Transmission: "automatic",
		Image:        "https://images.unsplash.com/photo-1503376780353-7e6692767b70?w=800&q=80",
	},
	{
		Name:         "Tesla Model 3",
		Brand:        "Tesla",
		Type:         models.CarTypeLuxury,
		PricePerDay:  95,
		Seats:        5,
		FuelType:     "electric",
		Transmission: "automatic",
		Image:        "https://images.unsplash.com/photo-1560958089-b8a1929cea89?w=800&q=80",
	},
	{
		Name:         "Mercedes-Benz C-Class",
		Brand:        "Mercedes-Benz",
		Type:         models.CarTypeLuxury,
		PricePerDay:  135,
		Seats:        5,
		FuelType:     "petrol",
		Transmission: "automatic",
		Image:        "https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?w=800&q=80",
	},
}

// EnsureSeedData inserts the sample fleet when the catalog is empty.
func EnsureSeedData(repo CarRepository) error {
	n, err := repo.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for i := range sampleFleet {
		car := sampleFleet[i]
		car.ID = uuid.New().String()
		if err := repo.Create(&car); err != nil {
			return err
		}
	}
	return nil
}
