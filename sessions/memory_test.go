package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReturnsHexToken(t *testing.T) {
	s := NewMemoryStore()
	token, err := s.Create("admin", "admin", []string{"*"})
	require.NoError(t, err)
	assert.Len(t, token, 64)

	sess, ok := s.Validate(token)
	require.True(t, ok)
	assert.Equal(t, "admin", sess.Username)
	assert.Equal(t, []string{"*"}, sess.AllowedStudios)
}

func TestValidateUnknownToken(t *testing.T) {
	s := NewMemoryStore()
	_, ok := s.Validate("deadbeef")
	assert.False(t, ok)
	_, ok = s.Validate("")
	assert.False(t, ok)
}

// The 24h expiry is absolute: valid a millisecond before the deadline,
// gone a millisecond after, and an expired token behaves exactly like an
// unknown one.
func TestExpiryBoundary(t *testing.T) {
	s := NewMemoryStore()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	token, err := s.Create("admin", "admin", nil)
	require.NoError(t, err)

	s.now = func() time.Time { return base.Add(TTL - time.Millisecond) }
	_, ok := s.Validate(token)
	assert.True(t, ok, "should validate just before expiry")

	s.now = func() time.Time { return base.Add(TTL + time.Millisecond) }
	_, ok = s.Validate(token)
	assert.False(t, ok, "should fail just after expiry")

	// The expired entry was evicted; even rolling the clock back does
	// not resurrect it.
	s.now = func() time.Time { return base }
	_, ok = s.Validate(token)
	assert.False(t, ok)
}

func TestDestroyIsIdempotent(t *testing.T) {
	s := NewMemoryStore()
	token, err := s.Create("admin", "admin", nil)
	require.NoError(t, err)

	s.Destroy(token)
	_, ok := s.Validate(token)
	assert.False(t, ok)

	// Destroying again, or destroying garbage, is a no-op.
	s.Destroy(token)
	s.Destroy("never-existed")
}

func TestSweepRemovesOnlyExpired(t *testing.T) {
	s := NewMemoryStore()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s.now = func() time.Time { return base.Add(-2 * TTL) }
	stale, err := s.Create("old", "user", nil)
	require.NoError(t, err)

	s.now = func() time.Time { return base }
	fresh, err := s.Create("new", "user", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Sweep())

	_, ok := s.Validate(stale)
	assert.False(t, ok)
	_, ok = s.Validate(fresh)
	assert.True(t, ok)
}
