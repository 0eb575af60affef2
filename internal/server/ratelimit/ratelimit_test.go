package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucket_BurstThenDeny(t *testing.T) {
	b := newBucket(5, 0.5)

	for i := 0; i < 5; i++ {
		ok, _, _ := b.take()
		require.True(t, ok, "request %d within burst", i+1)
	}

	ok, remaining, resetAt := b.take()
	assert.False(t, ok)
	assert.Equal(t, 0, remaining)
	assert.True(t, resetAt.After(time.Now()))
}

func TestBucket_Refills(t *testing.T) {
	// 20 tokens per second so the test only has to wait ~100ms.
	b := newBucket(2, 20)
	b.take()
	b.take()

	ok, _, _ := b.take()
	require.False(t, ok, "burst exhausted")

	time.Sleep(150 * time.Millisecond)

	ok, _, _ = b.take()
	assert.True(t, ok, "token refilled after waiting")
}

func TestLimiter_LoginRule(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Rules:         DefaultRules(),
	})
	defer limiter.Stop()

	candidate := "203.0.113.7"

	// /auth/login allows a burst of 10, then throttles.
	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow(candidate, "/auth/login", "POST")
		require.True(t, allowed, "login attempt %d", i+1)
		assert.Equal(t, 30, info.Limit)
	}

	allowed, info := limiter.Allow(candidate, "/auth/login", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_EndpointsHaveSeparateBuckets(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Rules:         DefaultRules(),
	})
	defer limiter.Stop()

	candidate := "203.0.113.7"

	// Exhaust the /analyze burst.
	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow(candidate, "/analyze", "POST")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow(candidate, "/analyze", "POST")
	require.False(t, allowed)

	// The same client can still fetch questions.
	allowed, info := limiter.Allow(candidate, "/questions", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 60, info.Limit)
}

func TestLimiter_ClientsAreIsolated(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Rules:         DefaultRules(),
	})
	defer limiter.Stop()

	// One client burning through the register burst does not affect
	// another.
	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("198.51.100.1", "/auth/register", "POST")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("198.51.100.1", "/auth/register", "POST")
	require.False(t, allowed)

	allowed, _ = limiter.Allow("198.51.100.2", "/auth/register", "POST")
	assert.True(t, allowed)
}

func TestLimiter_UnmatchedPathUsesDefault(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  3,
		DefaultWindow: time.Minute,
		Rules:         DefaultRules(),
	})
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("203.0.113.7", "/sessions", "GET")
		require.True(t, allowed)
		assert.Equal(t, 3, info.Limit)
	}

	allowed, _ := limiter.Allow("203.0.113.7", "/sessions", "GET")
	assert.False(t, allowed)
}

func TestLimiter_HealthNeverThrottled(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Rules:         DefaultRules(),
	})
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, info := limiter.Allow("203.0.113.7", "/health", "GET")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("203.0.113.7", "/analyze", "POST")
		require.True(t, allowed)
	}
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("203.0.113.7", "/analyze", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("203.0.113.7", "/sessions", "GET"); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, allowedCount)
}

func TestLimiter_StopIsIdempotent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    10,
		DefaultWindow:   time.Minute,
		CleanupInterval: 10 * time.Millisecond,
	})

	limiter.Stop()
	limiter.Stop()
}
