// Package display renders weather records into compact newline-delimited text
// blocks for the wearable screen. Everything here is a pure function.
package display

import (
	"fmt"
	"math"
	"strings"

	"github.com/revampedplant756/weather-glasses-app/internal/forecast"
	"github.com/revampedplant756/weather-glasses-app/internal/weather"
)

// Current renders a full-screen block for a current-weather reading. With
// fahrenheit enabled, temperatures carry a converted value alongside the
// Celsius one; everything else stays metric.
func Current(r weather.Reading, fahrenheit bool) string {
	header := fmt.Sprintf("%s %s", Glyph(r.Icon), r.City)
	if r.Country != "" {
		header += ", " + r.Country
	}

	lines := []string{
		header,
		fmt.Sprintf("%s (feels %s)", temp(r.TempC, fahrenheit), temp(r.FeelsLikeC, fahrenheit)),
		r.Description,
		fmt.Sprintf("Humidity %d%%  Wind %d km/h", r.Humidity, r.WindKmh),
	}
	return strings.Join(lines, "\n")
}

// ForecastBlock renders up to five aggregated days, one row per day.
func ForecastBlock(city string, days []forecast.Day, fahrenheit bool) string {
	lines := make([]string, 0, len(days)+1)
	lines = append(lines, fmt.Sprintf("%d-Day Forecast: %s", len(days), city))
	for _, d := range days {
		lines = append(lines, fmt.Sprintf("%s %s %s/%s %s",
			d.Weekday, Glyph(d.Icon), temp(d.HighC, fahrenheit), temp(d.LowC, fahrenheit), d.Description))
	}
	return strings.Join(lines, "\n")
}

// Coordinates renders a lat/lng pair as "<abs lat>°<N|S>, <abs lng>°<E|W>"
// with 4 decimal places.
func Coordinates(lat, lng float64) string {
	ns := "N"
	if lat < 0 {
		ns = "S"
	}
	ew := "E"
	if lng < 0 {
		ew = "W"
	}
	return fmt.Sprintf("%.4f°%s, %.4f°%s", math.Abs(lat), ns, math.Abs(lng), ew)
}

// Welcome is the screen shown on session start and on the back button.
func Welcome() string {
	return "Weather Glasses\nSay \"weather in <city>\" to begin\nSay \"help\" for commands"
}

// Help is the static command summary.
func Help() string {
	return strings.Join([]string{
		"Commands:",
		"\"weather in <city>\"",
		"\"forecast\"",
		"\"current\" / \"now\"",
		"forward button: toggle view",
		"back button: home",
	}, "\n")
}

// PromptLocation asks the user for a city when none is known.
func PromptLocation() string {
	return "Which city?\nSay \"weather in <city>\""
}

// Fetching is shown while a network call is in flight.
func Fetching(city string) string {
	if city == "" {
		return "Fetching weather..."
	}
	return fmt.Sprintf("Fetching weather\nfor %s...", city)
}

// CityNotFound names the city the provider rejected.
func CityNotFound(city string) string {
	return fmt.Sprintf("Couldn't find\n\"%s\"\nTry another city", city)
}

// FetchFailed is the generic provider/network failure screen.
func FetchFailed() string {
	return "Weather unavailable\nPlease try again"
}

func temp(c int, fahrenheit bool) string {
	if fahrenheit {
		f := int(math.Round(float64(c)*9.0/5.0 + 32))
		return fmt.Sprintf("%d°C/%d°F", c, f)
	}
	return fmt.Sprintf("%d°C", c)
}
