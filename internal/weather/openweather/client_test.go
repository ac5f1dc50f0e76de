package openweather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revampedplant756/weather-glasses-app/internal/weather"
)

func TestFetchCurrentMapsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "Paris,FR", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "Paris",
			"sys": {"country": "FR"},
			"main": {"temp": 18.4, "feels_like": 17.6, "humidity": 60},
			"wind": {"speed": 3.4},
			"weather": [{"description": "scattered clouds", "icon": "03d"}]
		}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), "test-key")
	c.currentURL = srv.URL

	r, err := c.FetchCurrent(context.Background(), weather.Location{City: "Paris", Country: "FR"})
	require.NoError(t, err)
	assert.Equal(t, "Paris", r.City)
	assert.Equal(t, "FR", r.Country)
	assert.Equal(t, 18, r.TempC)
	assert.Equal(t, 18, r.FeelsLikeC)
	assert.Equal(t, 60, r.Humidity)
	assert.Equal(t, 12, r.WindKmh) // 3.4 m/s ~ 12.24 km/h
	assert.Equal(t, "scattered clouds", r.Description)
	assert.Equal(t, "03d", r.Icon)
}

func TestFetchCurrentByCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("lat"))
		assert.NotEmpty(t, r.URL.Query().Get("lon"))
		assert.Empty(t, r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"name": "Paris", "main": {"temp": 18}, "weather": []}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), "test-key")
	c.currentURL = srv.URL

	lat, lon := 48.8566, 2.3522
	_, err := c.FetchCurrent(context.Background(), weather.Location{Lat: &lat, Lon: &lon})
	require.NoError(t, err)
}

func TestFetchCurrentUnknownCity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), "test-key")
	c.currentURL = srv.URL

	_, err := c.FetchCurrent(context.Background(), weather.Location{City: "Atlantis"})
	assert.ErrorIs(t, err, weather.ErrLocationNotFound)
}

func TestFetchForecastMapsIntervals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"list": [
			{"dt": 1787911200, "main": {"temp": 15.2}, "weather": [{"description": "clear sky", "icon": "01d"}]},
			{"dt": 1787922000, "main": {"temp": 17.8}, "weather": [{"description": "few clouds", "icon": "02d"}]}
		]}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), "test-key")
	c.forecastURL = srv.URL

	readings, err := c.FetchForecast(context.Background(), weather.Location{City: "Paris"})
	require.NoError(t, err)
	require.Len(t, readings, 2)

	assert.Equal(t, 15.2, readings[0].TempC)
	assert.Equal(t, "clear sky", readings[0].Description)
	assert.Equal(t, "01d", readings[0].Icon)
	assert.Equal(t, readings[0].Timestamp.UTC().Format("2006-01-02"), readings[0].DateKey)
	assert.True(t, readings[1].Timestamp.After(readings[0].Timestamp))
}

func TestFetchRequiresAPIKey(t *testing.T) {
	c := New(http.DefaultClient, "")

	_, err := c.FetchCurrent(context.Background(), weather.Location{City: "Paris"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, weather.ErrLocationNotFound))
}
