package session

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/revampedplant756/weather-glasses-app/internal/common"
	"github.com/revampedplant756/weather-glasses-app/internal/display"
	"github.com/revampedplant756/weather-glasses-app/internal/forecast"
	"github.com/revampedplant756/weather-glasses-app/internal/intent"
	"github.com/revampedplant756/weather-glasses-app/internal/weather"
)

// DisplayFunc renders one full-screen text block on the wearable.
type DisplayFunc func(text string)

// GeoResolver resolves coordinates from the device's location feed to a place
// name. May be absent, in which case seeded locations stay coordinates-only.
type GeoResolver interface {
	CityFor(lat, lng float64) (city, country string, err error)
}

// Machine drives session state in response to transcript and button events.
// It is stateless itself; all per-session state lives on the Session, and each
// handler runs under the session's lock so events within a session are handled
// strictly one at a time.
type Machine struct {
	fetcher    weather.Fetcher
	resolver   GeoResolver
	fahrenheit bool
	log        *zap.SugaredLogger
}

// NewMachine creates a Machine. resolver may be nil.
func NewMachine(fetcher weather.Fetcher, resolver GeoResolver, fahrenheit bool, log *zap.SugaredLogger) *Machine {
	return &Machine{
		fetcher:    fetcher,
		resolver:   resolver,
		fahrenheit: fahrenheit,
		log:        log,
	}
}

// HandleTranscript processes one speech-to-text result. Interim transcripts
// are ignored; transcripts with no recognized command are silently dropped.
func (m *Machine) HandleTranscript(ctx context.Context, s *Session, text string, isFinal bool, show DisplayFunc) {
	if !isFinal {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	t := strings.ToLower(text)

	switch {
	case strings.Contains(t, "help"):
		show(display.Help())
	case strings.Contains(t, "forecast"):
		m.commandForecast(ctx, s, show)
	case strings.Contains(t, "weather"):
		m.commandWeather(ctx, s, t, show)
	case common.HasAny(t, "current", "now"):
		m.commandCurrent(ctx, s, show)
	}
}

// HandleButton processes a hardware button event. Only presses are acted on.
func (m *Machine) HandleButton(ctx context.Context, s *Session, name, action string, show DisplayFunc) {
	if action == "up" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	switch name {
	case "back":
		// A reset, not a toggle: always land on the welcome screen.
		s.ShowingForecast = false
		show(display.Welcome())
	case "forward", "select":
		m.toggleView(ctx, s, show)
	}
}

// HandleLocationFix seeds the session's location from the device's location
// feed. A fix never overrides a location that is already set.
func (m *Machine) HandleLocationFix(ctx context.Context, s *Session, lat, lng float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.Location != nil {
		return
	}

	loc := &weather.Location{
		Lat:    &lat,
		Lon:    &lng,
		Source: weather.SourceGeolocation,
	}
	if m.resolver != nil {
		city, country, err := m.resolver.CityFor(lat, lng)
		if err != nil {
			m.log.Debugw("reverse geocode failed", "session", s.ID, "error", err)
		} else if city != "" {
			loc.City = city
			loc.Country = country
		}
	}
	s.Location = loc
	m.log.Infow("session location seeded from fix", "session", s.ID, "label", locationLabel(*loc))
}

func (m *Machine) commandWeather(ctx context.Context, s *Session, transcript string, show DisplayFunc) {
	target := s.Location
	newLocation := false
	if city, ok := intent.ParseLocation(transcript); ok {
		target = &weather.Location{City: city, Source: weather.SourceVoice}
		newLocation = s.Location == nil || s.Location.City != city
	}
	if target == nil {
		show(display.PromptLocation())
		return
	}
	m.fetchAndShowCurrent(ctx, s, *target, newLocation, show)
}

func (m *Machine) commandCurrent(ctx context.Context, s *Session, show DisplayFunc) {
	if s.Location == nil {
		show(display.PromptLocation())
		return
	}
	if s.Current != nil {
		s.ShowingForecast = false
		show(display.Current(*s.Current, m.fahrenheit))
		return
	}
	m.fetchAndShowCurrent(ctx, s, *s.Location, false, show)
}

func (m *Machine) commandForecast(ctx context.Context, s *Session, show DisplayFunc) {
	if s.Location == nil {
		show(display.PromptLocation())
		return
	}
	m.fetchAndShowForecast(ctx, s, show)
}

// fetchAndShowCurrent fetches current weather for target and, on success,
// commits target as the session location and caches the reading. A failed
// fetch changes nothing: the previous location, caches and view all survive.
func (m *Machine) fetchAndShowCurrent(ctx context.Context, s *Session, target weather.Location, newLocation bool, show DisplayFunc) {
	show(display.Fetching(locationLabel(target)))

	tag := s.nextFetchSeq()
	reading, err := m.fetcher.FetchCurrent(ctx, target)
	if err != nil {
		m.log.Warnw("current weather fetch failed", "session", s.ID, "label", locationLabel(target), "error", err)
		show(fetchErrorText(target, err))
		return
	}
	if !s.fetchIsLatest(tag) {
		m.log.Debugw("dropping stale current fetch", "session", s.ID, "tag", tag)
		return
	}

	committed := target
	s.Location = &committed
	s.Current = &reading
	if newLocation {
		s.Forecast = nil
	}
	s.ShowingForecast = false
	show(display.Current(reading, m.fahrenheit))
}

// fetchAndShowForecast fetches and aggregates the forecast for the session's
// location. The forecast view is only entered once the cache is populated.
func (m *Machine) fetchAndShowForecast(ctx context.Context, s *Session, show DisplayFunc) {
	loc := *s.Location
	show(display.Fetching(locationLabel(loc)))

	tag := s.nextFetchSeq()
	readings, err := m.fetcher.FetchForecast(ctx, loc)
	if err != nil {
		m.log.Warnw("forecast fetch failed", "session", s.ID, "label", locationLabel(loc), "error", err)
		show(fetchErrorText(loc, err))
		return
	}
	if !s.fetchIsLatest(tag) {
		m.log.Debugw("dropping stale forecast fetch", "session", s.ID, "tag", tag)
		return
	}

	days := forecast.Aggregate(readings)
	if len(days) == 0 {
		show(display.FetchFailed())
		return
	}

	s.Forecast = days
	s.ShowingForecast = true
	show(display.ForecastBlock(locationLabel(loc), days, m.fahrenheit))
}

// toggleView flips between the current and forecast views, re-fetching only
// when the needed cache is missing. With no current cache the button is a
// no-op.
func (m *Machine) toggleView(ctx context.Context, s *Session, show DisplayFunc) {
	if s.ShowingForecast {
		if s.Current != nil {
			s.ShowingForecast = false
			show(display.Current(*s.Current, m.fahrenheit))
			return
		}
		if s.Location != nil {
			m.fetchAndShowCurrent(ctx, s, *s.Location, false, show)
		}
		return
	}

	if s.Current == nil {
		return
	}
	if s.Forecast != nil {
		s.ShowingForecast = true
		show(display.ForecastBlock(locationLabel(*s.Location), s.Forecast, m.fahrenheit))
		return
	}
	if s.Location != nil {
		m.fetchAndShowForecast(ctx, s, show)
	}
}

func fetchErrorText(loc weather.Location, err error) string {
	if errors.Is(err, weather.ErrLocationNotFound) {
		return display.CityNotFound(locationLabel(loc))
	}
	return display.FetchFailed()
}

func locationLabel(loc weather.Location) string {
	if loc.City != "" {
		return loc.City
	}
	if loc.HasCoordinates() {
		return display.Coordinates(*loc.Lat, *loc.Lon)
	}
	return ""
}
