package weather

import (
	"fmt"
	"time"
)

// LocationSource says how a session's location was established.
type LocationSource string

const (
	SourceVoice       LocationSource = "voice"
	SourceGeolocation LocationSource = "geolocation"
)

// Location represents a place a session is asking about. A location resolved
// from speech carries City (and maybe Country); one seeded from the device's
// location feed carries coordinates and may gain a city via reverse geocoding.
type Location struct {
	City    string         `json:"city,omitempty"`
	Country string         `json:"country,omitempty"`
	Lat     *float64       `json:"lat,omitempty"`
	Lon     *float64       `json:"lon,omitempty"`
	Source  LocationSource `json:"source"`
}

// HasCoordinates reports whether both latitude and longitude are set.
func (l Location) HasCoordinates() bool {
	return l.Lat != nil && l.Lon != nil
}

// Query returns the provider query string for city-based lookups.
func (l Location) Query() string {
	if l.Country != "" {
		return fmt.Sprintf("%s,%s", l.City, l.Country)
	}
	return l.City
}

// Reading is a normalized current-weather snapshot. Created fresh on every
// fetch and never mutated afterwards.
type Reading struct {
	City        string `json:"city"`
	Country     string `json:"country,omitempty"`
	TempC       int    `json:"tempC"`
	FeelsLikeC  int    `json:"feelsLikeC"`
	Description string `json:"description"`
	Humidity    int    `json:"humidityPercent"`
	WindKmh     int    `json:"windKmh"`
	Icon        string `json:"icon"`
}

// IntervalReading is one 3-hour forecast interval as delivered by the
// provider. It exists only between the provider client and the aggregator.
type IntervalReading struct {
	Timestamp   time.Time
	DateKey     string // day portion of Timestamp, "2006-01-02"
	TempC       float64
	Description string
	Icon        string
}
