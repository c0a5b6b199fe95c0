package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newStoreWithClock(rps float64, burst int, ttl time.Duration) (*Store, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewStore(rps, burst, ttl)
	s.now = clock.Now
	return s, clock
}

func TestStore_GetReturnsSameLimiterPerKey(t *testing.T) {
	s := NewStore(1, 2, time.Minute)

	a1 := s.Get("a")
	a2 := s.Get("a")
	b := s.Get("b")

	assert.Same(t, a1, a2)
	assert.NotSame(t, a1, b)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1.0, s.RPS())
	assert.Equal(t, 2, s.Burst())
}

func TestStore_BurstIsEnforced(t *testing.T) {
	s := NewStore(0.001, 3, time.Minute)
	lim := s.Get("client")

	for i := range 3 {
		require.True(t, lim.Allow(), "request %d must pass", i)
	}
	assert.False(t, lim.Allow())
}

func TestStore_Cleanup(t *testing.T) {
	s, clock := newStoreWithClock(1, 1, time.Minute)

	s.Get("idle")
	clock.Advance(45 * time.Second)
	s.Get("active")
	clock.Advance(30 * time.Second)

	assert.Equal(t, 1, s.Cleanup())
	assert.Equal(t, 1, s.Len())

	// touching a key renews it
	s.Get("active")
	clock.Advance(50 * time.Second)
	assert.Zero(t, s.Cleanup())
}

func TestStore_ConcurrentGet(t *testing.T) {
	s := NewStore(100, 10, time.Minute)

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Get([]string{"a", "b", "c"}[i%3])
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, s.Len())
}
