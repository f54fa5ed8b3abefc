package catalog

import (
	"strings"

	"nestcrm-web/internal/models"
)

// Default price bounds admit every dataset in the catalog.
const (
	DefaultPriceMin = 0
	DefaultPriceMax = 50000
)

// DefaultFilterState is the unfiltered view and the recovery target
// when a selection matches nothing.
func DefaultFilterState() models.FilterState {
	return models.FilterState{
		Category: models.CategoryAll,
		PriceMin: DefaultPriceMin,
		PriceMax: DefaultPriceMax,
	}
}

// Filter returns the datasets matching state, preserving input order.
// A dataset passes only if every active constraint holds:
//
//   - category: "all" matches everything, otherwise exact match
//   - search: case-insensitive substring of title, description, or
//     location (when the dataset has one)
//   - price: inclusive on both bounds
//   - region: dataset region OR its location equals a selected value
//   - format: at least one selected value is a substring of the
//     dataset's comma-delimited format string
//   - data age: exact membership
//
// Empty attribute selections impose no constraint.
func Filter(datasets []models.Dataset, state models.FilterState) []models.Dataset {
	result := make([]models.Dataset, 0, len(datasets))
	for _, d := range datasets {
		if matches(d, state) {
			result = append(result, d)
		}
	}
	return result
}

func matches(d models.Dataset, state models.FilterState) bool {
	if state.Category != "" && state.Category != models.CategoryAll && d.Category != state.Category {
		return false
	}

	if q := strings.ToLower(strings.TrimSpace(state.Search)); q != "" {
		inTitle := strings.Contains(strings.ToLower(d.Title), q)
		inDescription := strings.Contains(strings.ToLower(d.Description), q)
		inLocation := d.Location != "" && strings.Contains(strings.ToLower(d.Location), q)
		if !inTitle && !inDescription && !inLocation {
			return false
		}
	}

	if d.Price < state.PriceMin || d.Price > state.PriceMax {
		return false
	}

	if len(state.Regions) > 0 {
		ok := false
		for _, region := range state.Regions {
			if d.Region == region || (d.Location != "" && d.Location == region) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	if len(state.Formats) > 0 {
		ok := false
		for _, format := range state.Formats {
			if strings.Contains(d.Format, format) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	if len(state.DataAges) > 0 {
		ok := false
		for _, age := range state.DataAges {
			if d.DataAge == age {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	return true
}

// Categories lists the store sidebar entries in display order.
func Categories() []models.CategoryOption {
	return []models.CategoryOption{
		{ID: models.CategoryAll, Name: "All Datasets", Icon: "Database"},
		{ID: models.CategoryLocationData, Name: "Location Insights", Icon: "MapPin"},
		{ID: models.CategoryMarketTrends, Name: "Market Trends", Icon: "TrendingUp"},
		{ID: models.CategoryBuyerDemographics, Name: "Buyer Demographics", Icon: "Users"},
		{ID: models.CategoryCommercial, Name: "Commercial Real Estate", Icon: "Building"},
		{ID: models.CategoryGeoAnalytics, Name: "Geo Analytics", Icon: "Map"},
		{ID: models.CategoryRental, Name: "Rental Market", Icon: "Home"},
		{ID: models.CategoryInvestment, Name: "Investment Insights", Icon: "TrendingUp"},
	}
}

// FilterOptions lists the selectable attribute values.
func FilterOptions() models.FilterOptions {
	return models.FilterOptions{
		Formats: []string{"CSV", "Excel", "JSON", "API Access", "GeoJSON", "PDF"},
		Regions: []string{"National", "Mumbai", "Metro Cities", "State-wise", "Tier-2 Cities"},
		DataAges: []models.DataAge{
			models.DataAgeUnderOneMonth,
			models.DataAgeOneToThree,
			models.DataAgeThreeToSix,
			models.DataAgeSixToTwelve,
		},
	}
}
