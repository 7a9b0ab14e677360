package car

import (
	"sort"
	"strconv"
	"strings"

	"carhive/models"
)

// Filter narrows a car list. Search matches name or brand case-insensitively;
// price accepts "min-max" bands or an open-ended "min+"; brand and
// transmission are exact matches. Empty filter fields are skipped.
func Filter(cars []models.Car, f models.CarFilter) []models.Car {
	filtered := make([]models.Car, 0, len(cars))
	for _, c := range cars {
		if f.Search != "" && !matchesSearch(c, f.Search) {
			continue
		}
		if f.Brand != "" && c.Brand != f.Brand {
			continue
		}
		if f.Transmission != "" && c.Transmission != f.Transmission {
			continue
		}
		if f.Price != "" && !matchesPrice(c.PricePerDay, f.Price) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

func matchesSearch(c models.Car, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Brand), term)
}

// matchesPrice parses a "min-max" or "min+" band. Malformed bands match
// everything rather than hiding the catalog.
func matchesPrice(price float64, band string) bool {
	if strings.HasSuffix(band, "+") {
		min, err := strconv.ParseFloat(strings.TrimSuffix(band, "+"), 64)
		if err != nil {
			return true
		}
		return price >= min
	}
	parts := strings.SplitN(band, "-", 2)
	if len(parts) != 2 {
		return true
	}
	min, errMin := strconv.ParseFloat(parts[0], 64)
	max, errMax := strconv.ParseFloat(parts[1], 64)
	if errMin != nil || errMax != nil {
		return true
	}
	return price >= min && price <= max
}

// UniqueBrands returns the sorted distinct brands in the list.
func UniqueBrands(cars []models.Car) []string {
	seen := make(map[string]struct{}, len(cars))
	brands := make([]string, 0, len(cars))
	for _, c := range cars {
		if _, ok := seen[c.Brand]; ok {
			continue
		}
		seen[c.Brand] = struct{}{}
		brands = append(brands, c.Brand)
	}
	sort.Strings(brands)
	return brands
}
