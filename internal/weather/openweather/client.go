// Package openweather implements the weather.Fetcher contract against the
// OpenWeatherMap current-weather and 5-day/3-hour forecast endpoints.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/revampedplant756/weather-glasses-app/internal/weather"
)

// Client fetches from OpenWeatherMap with retries and a circuit breaker.
type Client struct {
	apiKey      string
	currentURL  string
	forecastURL string
	httpCfg     HTTPClientConfig
	circuit     *gobreaker.CircuitBreaker
}

// New creates a Client using the shared HTTP client.
func New(client *http.Client, apiKey string) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		apiKey:      apiKey,
		currentURL:  "https://api.openweathermap.org/data/2.5/weather",
		forecastURL: "https://api.openweathermap.org/data/2.5/forecast",
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

var _ weather.Fetcher = (*Client)(nil)

// FetchCurrent returns a normalized current-weather reading for loc.
func (c *Client) FetchCurrent(ctx context.Context, loc weather.Location) (weather.Reading, error) {
	if c.apiKey == "" {
		return weather.Reading{}, fmt.Errorf("openweather api key is not configured")
	}

	resp, err := c.get(ctx, c.currentURL, loc)
	if err != nil {
		return weather.Reading{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return weather.Reading{}, fmt.Errorf("%q: %w", loc.Query(), weather.ErrLocationNotFound)
	}

	var payload struct {
		Name string `json:"name"`
		Sys  struct {
			Country string `json:"country"`
		} `json:"sys"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"` // m/s with metric units
		} `json:"wind"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Reading{}, err
	}

	r := weather.Reading{
		City:       payload.Name,
		Country:    payload.Sys.Country,
		TempC:      int(math.Round(payload.Main.Temp)),
		FeelsLikeC: int(math.Round(payload.Main.FeelsLike)),
		Humidity:   payload.Main.Humidity,
		WindKmh:    int(math.Round(payload.Wind.Speed * 3.6)),
	}
	if len(payload.Weather) > 0 {
		r.Description = payload.Weather[0].Description
		r.Icon = payload.Weather[0].Icon
	}
	if r.City == "" {
		r.City = loc.City
	}
	return r, nil
}

// FetchForecast returns the raw 3-hour interval readings for loc, in the
// chronological order the provider emits them.
func (c *Client) FetchForecast(ctx context.Context, loc weather.Location) ([]weather.IntervalReading, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("openweather api key is not configured")
	}

	resp, err := c.get(ctx, c.forecastURL, loc)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%q: %w", loc.Query(), weather.ErrLocationNotFound)
	}

	var payload struct {
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp float64 `json:"temp"`
			} `json:"main"`
			Weather []struct {
				Description string `json:"description"`
				Icon        string `json:"icon"`
			} `json:"weather"`
		} `json:"list"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	readings := make([]weather.IntervalReading, 0, len(payload.List))
	for _, item := range payload.List {
		ts := time.Unix(item.Dt, 0).UTC()
		r := weather.IntervalReading{
			Timestamp: ts,
			DateKey:   ts.Format("2006-01-02"),
			TempC:     item.Main.Temp,
		}
		if len(item.Weather) > 0 {
			r.Description = item.Weather[0].Description
			r.Icon = item.Weather[0].Icon
		}
		readings = append(readings, r)
	}
	return readings, nil
}

func (c *Client) get(ctx context.Context, baseURL string, loc weather.Location) (*http.Response, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("appid", c.apiKey)
		values.Set("units", "metric")

		if loc.HasCoordinates() {
			values.Set("lat", fmt.Sprintf("%f", *loc.Lat))
			values.Set("lon", fmt.Sprintf("%f", *loc.Lon))
		} else {
			values.Set("q", loc.Query())
		}

		u := fmt.Sprintf("%s?%s", baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	return doRequestWithResilience(ctx, c.httpCfg, c.circuit, buildRequest)
}
