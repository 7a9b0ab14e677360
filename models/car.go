package models

import "time"

// Car categories offered by the fleet.
const (
	CarTypeEconomy = "economy"
	CarTypeSUV     = "suv"
	CarTypeLuxury  = "luxury"
	CarTypeSports  = "sports"
)

// Car represents a rentable vehicle in the catalog.
type Car struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Brand        string    `bson:"brand" json:"brand"`
	Type         string    `bson:"type" json:"type"` // economy, suv, luxury, sports
	PricePerDay  float64   `bson:"price_per_day" json:"pricePerDay"`
	Seats        int       `bson:"seats" json:"seats"`
	FuelType     string    `bson:"fuel_type" json:"fuelType"`
	Transmission string    `bson:"transmission" json:"transmission"`
	Image        string    `bson:"image" json:"image"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// CarInput is the payload for creating or updating a car.
type CarInput struct {
	Name         string  `json:"name" binding:"required"`
	Brand        string  `json:"brand" binding:"required"`
	Type         string  `json:"type" binding:"required"`
	PricePerDay  float64 `json:"pricePerDay" binding:"required,gt=0"`
	Seats        int     `json:"seats" binding:"required,gt=0"`
	FuelType     string  `json:"fuelType" binding:"required"`
	Transmission string  `json:"transmission" binding:"required"`
	Image        string  `json:"image"`
}

// CarFilter narrows a catalog listing. Zero values mean "no constraint".
type CarFilter struct {
	Search       string // matches name or brand, case-insensitive
	Brand        string
	Price        string // "min-max" or "min+"
	Transmission string
}
