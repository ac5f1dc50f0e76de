// Package geo resolves device location fixes to place names so a session
// seeded from the location feed can display a city instead of raw coordinates.
package geo

import (
	"fmt"

	"github.com/kelvins/geocoder"
)

// Resolver reverse-geocodes coordinates via the Google Geocoding API.
// Construction requires an API key; callers without one should skip the
// resolver entirely and keep coordinates-only locations.
type Resolver struct{}

// NewResolver configures the geocoder with the given API key.
func NewResolver(apiKey string) *Resolver {
	geocoder.ApiKey = apiKey
	return &Resolver{}
}

// CityFor returns the city and country for a coordinate pair.
func (r *Resolver) CityFor(lat, lng float64) (string, string, error) {
	location := geocoder.Location{
		Latitude:  lat,
		Longitude: lng,
	}

	addresses, err := geocoder.GeocodingReverse(location)
	if err != nil {
		return "", "", fmt.Errorf("reverse geocoding: %w", err)
	}

	for _, addr := range addresses {
		if addr.City != "" {
			return addr.City, addr.Country, nil
		}
	}
	return "", "", fmt.Errorf("no city in reverse geocoding result")
}
