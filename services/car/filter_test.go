package car_test

import (
	"reflect"
	"testing"

	"carhive/models"
	"carhive/services/car"
)

func fleet() []models.Car {
	return []models.Car{
		{ID: "1", Name: "Toyota Camry", Brand: "Toyota", Type: models.CarTypeEconomy, PricePerDay: 45, Transmission: "automatic"},
		{ID: "2", Name: "BMW 3 Series", Brand: "BMW", Type: models.CarTypeLuxury, PricePerDay: 120, Transmission: "automatic"},
		{ID: "3", Name: "Toyota RAV4", Brand: "Toyota", Type: models.CarTypeSUV, PricePerDay: 65, Transmission: "manual"},
		{ID: "4", Name: "Porsche 911", Brand: "Porsche", Type: models.CarTypeSports, PricePerDay: 250, Transmission: "automatic"},
	}
}

func ids(cars []models.Car) []string {
	out := make([]string, 0, len(cars))
	for _, c := range cars {
		out = append(out, c.ID)
	}
	return out
}

func TestFilterSearch(t *testing.T) {
	got := car.Filter(fleet(), models.CarFilter{Search: "toyota"})
	if want := []string{"1", "3"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("search filter = %v; want %v", ids(got), want)
	}

	// Name match, not just brand.
	got = car.Filter(fleet(), models.CarFilter{Search: "911"})
	if want := []string{"4"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("search filter = %v; want %v", ids(got), want)
	}
}

func TestFilterBrandAndTransmission(t *testing.T) {
	got := car.Filter(fleet(), models.CarFilter{Brand: "Toyota", Transmission: "manual"})
	if want := []string{"3"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("combined filter = %v; want %v", ids(got), want)
	}
}

func TestFilterPriceBands(t *testing.T) {
	got := car.Filter(fleet(), models.CarFilter{Price: "50-150"})
	if want := []string{"2", "3"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("price band = %v; want %v", ids(got), want)
	}

	got = car.Filter(fleet(), models.CarFilter{Price: "100+"})
	if want := []string{"2", "4"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("open price band = %v; want %v", ids(got), want)
	}

	// Malformed bands must not hide the catalog.
	got = car.Filter(fleet(), models.CarFilter{Price: "cheap"})
	if len(got) != len(fleet()) {
		t.Fatalf("malformed price band filtered to %d cars; want %d", len(got), len(fleet()))
	}
}

func TestFilterEmpty(t *testing.T) {
	got := car.Filter(fleet(), models.CarFilter{})
	if len(got) != len(fleet()) {
		t.Fatalf("empty filter = %d cars; want %d", len(got), len(fleet()))
	}
}

func TestUniqueBrands(t *testing.T) {
	got := car.UniqueBrands(fleet())
	want := []string{"BMW", "Porsche", "Toyota"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("UniqueBrands = %v; want %v", got, want)
	}
}
