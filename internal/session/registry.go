package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no session exists for a given identifier.
var ErrNotFound = errors.New("no such session")

// Registry owns the active sessions, keyed by session identifier. Entries are
// created on session start and removed on session end; the registry itself
// never touches session state beyond lifecycle.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// Create mints a new session with a fresh identifier.
func (r *Registry) Create() *Session {
	s := &Session{
		ID:         uuid.NewString(),
		lastActive: time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return s
}

// Get looks up a session by identifier.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Remove drops a session. Removing an unknown id is a no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len returns the number of active sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// SweepIdle removes sessions with no activity for longer than ttl and returns
// how many were dropped.
func (r *Registry) SweepIdle(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	r.mu.Lock()
	candidates := make([]*Session, 0)
	for _, s := range r.sessions {
		candidates = append(candidates, s)
	}
	r.mu.Unlock()

	removed := 0
	for _, s := range candidates {
		if s.LastActive().Before(cutoff) {
			r.mu.Lock()
			delete(r.sessions, s.ID)
			r.mu.Unlock()
			removed++
		}
	}
	return removed
}
