// Package ratelimit applies per-client token bucket limits to the API
// endpoints.
package ratelimit

import (
	"sync"
	"time"
)

// idleExpiry is how long an untouched bucket survives before the
// cleanup pass drops it.
const idleExpiry = time.Hour

// Rule is a per-endpoint limit. A Path ending in "/" matches by
// prefix, so "/sessions/" covers "/sessions/{id}". A Limit of zero or
// less means the endpoint is never throttled.
type Rule struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config controls the limiter. Requests that match no rule fall back
// to DefaultLimit per DefaultWindow.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Rules           []Rule
}

// Info describes the limit state reported back to the client in the
// X-RateLimit headers.
type Info struct {
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// bucket is a token bucket. level refills continuously at perSecond,
// capped at burst.
type bucket struct {
	mu        sync.Mutex
	burst     float64
	perSecond float64
	level     float64
	updatedAt time.Time
	touchedAt time.Time
}

func newBucket(burst int, perSecond float64) *bucket {
	now := time.Now()
	return &bucket{
		burst:     float64(burst),
		perSecond: perSecond,
		level:     float64(burst),
		updatedAt: now,
		touchedAt: now,
	}
}

// take consumes one token if available. It reports whether the request
// may proceed, the whole tokens left, and when the bucket is full
// again.
func (b *bucket) take() (ok bool, remaining int, resetAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.level += now.Sub(b.updatedAt).Seconds() * b.perSecond
	if b.level > b.burst {
		b.level = b.burst
	}
	b.updatedAt = now
	b.touchedAt = now

	if b.level >= 1 {
		b.level--
		ok = true
	}

	resetAt = now
	if b.level < b.burst {
		refillSeconds := (b.burst - b.level) / b.perSecond
		resetAt = now.Add(time.Duration(refillSeconds * float64(time.Second)))
	}
	return ok, int(b.level), resetAt
}

func (b *bucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.touchedAt.Before(cutoff)
}

// Limiter hands out one bucket per client and endpoint rule.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config
	stop    chan struct{}
	once    sync.Once
}

// NewLimiter builds a limiter. A nil config falls back to a permissive
// default.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:       true,
			DefaultLimit:  1000,
			DefaultWindow: time.Minute,
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
		stop:    make(chan struct{}),
	}
	if config.Enabled && config.CleanupInterval > 0 {
		go l.reapIdle(config.CleanupInterval)
	}
	return l
}

// Allow decides whether one more request from clientID may hit the
// endpoint now.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{}
	}

	rule := Match(path, method, l.config.Rules)
	if rule == nil {
		rule = &Rule{Limit: l.config.DefaultLimit, Window: l.config.DefaultWindow}
	}
	if rule.Limit <= 0 {
		return true, Info{}
	}

	b := l.bucketFor(clientID+" "+method+" "+path, rule)
	ok, remaining, resetAt := b.take()

	info := Info{
		Limit:     rule.Limit,
		Remaining: remaining,
		ResetTime: resetAt,
	}
	if !ok {
		if wait := time.Until(resetAt); wait > 0 {
			info.RetryAfter = wait
		}
	}
	return ok, info
}

// bucketFor returns the bucket for key, creating it under the rule's
// limit on first sight.
func (l *Limiter) bucketFor(key string, rule *Rule) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}

	burst := rule.Burst
	if burst <= 0 {
		burst = rule.Limit
	}
	b := newBucket(burst, float64(rule.Limit)/rule.Window.Seconds())
	l.buckets[key] = b
	return b
}

// reapIdle periodically drops buckets no request has touched for
// idleExpiry, so one-off clients do not accumulate.
func (l *Limiter) reapIdle(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-idleExpiry)
			l.mu.Lock()
			for key, b := range l.buckets {
				if b.idleSince(cutoff) {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		case <-l.stop:
			return
		}
	}
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}
