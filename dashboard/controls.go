package dashboard

import (
	"github.com/bitmark-inc/covid-chart/schema"
)

const (
	DefaultCountryA = "US"
	DefaultCountryB = "Italy"
)

// Controls are the user selections driving one update cycle
type Controls struct {
	Metric   schema.MetricType `json:"type"`
	CountryA string            `json:"country1"`
	CountryB string            `json:"country2"`
	Slider   int               `json:"end"`
}

// DefaultControls selects the default countries, confirmed cases and the
// latest date of the slider.
func DefaultControls(s Slider) Controls {
	return Controls{
		Metric:   schema.Confirmed,
		CountryA: DefaultCountryA,
		CountryB: DefaultCountryB,
		Slider:   s.Max,
	}
}

// Countries lists the country level names in source order without repeats
func Countries(records []schema.LocationRecord) []string {
	seen := map[string]struct{}{}
	countries := []string{}
	for _, r := range records {
		if !r.IsCountry() {
			continue
		}
		if _, ok := seen[r.CountryName]; ok {
			continue
		}
		seen[r.CountryName] = struct{}{}
		countries = append(countries, r.CountryName)
	}
	return countries
}
