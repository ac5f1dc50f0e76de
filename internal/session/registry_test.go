package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()

	s := r.Create()
	require.NotEmpty(t, s.ID)
	assert.Equal(t, 1, r.Len())

	got, err := r.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	r.Remove(s.ID)
	assert.Equal(t, 0, r.Len())

	_, err = r.Get(s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistryRemoveUnknownIsNoop(t *testing.T) {
	r := NewRegistry()
	r.Remove("nope")
	assert.Equal(t, 0, r.Len())
}

func TestRegistrySweepIdle(t *testing.T) {
	r := NewRegistry()

	stale := r.Create()
	fresh := r.Create()

	stale.mu.Lock()
	stale.lastActive = time.Now().Add(-time.Hour)
	stale.mu.Unlock()

	removed := r.SweepIdle(30 * time.Minute)
	assert.Equal(t, 1, removed)

	_, err := r.Get(stale.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.Get(fresh.ID)
	assert.NoError(t, err)
}
