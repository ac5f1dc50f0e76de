package session

import (
	"sync"
	"time"

	"github.com/revampedplant756/weather-glasses-app/internal/forecast"
	"github.com/revampedplant756/weather-glasses-app/internal/weather"
)

// Session holds the per-session navigation state. All mutation happens inside
// the machine's event handlers while mu is held, so within a session events
// run strictly one at a time.
//
// Invariant: ShowingForecast is true only while Forecast is non-nil.
type Session struct {
	ID string

	mu sync.Mutex

	Location        *weather.Location
	ShowingForecast bool
	Current         *weather.Reading
	Forecast        []forecast.Day

	// fetchSeq tags outgoing fetches so a stale in-flight result can be
	// recognized and dropped instead of overwriting newer state.
	fetchSeq uint64

	lastActive time.Time
}

func (s *Session) touch() {
	s.lastActive = time.Now()
}

// LastActive returns the time the session last handled an event.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// nextFetchSeq issues a new fetch tag. Called with mu held.
func (s *Session) nextFetchSeq() uint64 {
	s.fetchSeq++
	return s.fetchSeq
}

// fetchIsLatest reports whether tag is still the latest issued fetch.
// Called with mu held.
func (s *Session) fetchIsLatest(tag uint64) bool {
	return tag == s.fetchSeq
}
