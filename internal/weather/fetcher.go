package weather

import (
	"context"
	"errors"
)

var (
	// ErrLocationNotFound is returned when the provider does not know the
	// requested place. Handlers name the failed city in the user message.
	ErrLocationNotFound = errors.New("location not found")

	// ErrNoLocation is returned when a fetch is attempted before any
	// location has been set on the session.
	ErrNoLocation = errors.New("no location set")
)

// Fetcher abstracts the weather provider. Lookups by city name and by
// coordinates are selected by which fields of the Location are populated.
type Fetcher interface {
	FetchCurrent(ctx context.Context, loc Location) (Reading, error)
	FetchForecast(ctx context.Context, loc Location) ([]IntervalReading, error)
}
