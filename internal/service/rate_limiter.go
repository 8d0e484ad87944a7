package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// memoryRateLimiter es el respaldo sin Redis: un token bucket por cliente.
// Un bucket que lleva una ventana entera sin uso ya está lleno, así que se descarta.
type memoryRateLimiter struct {
	mu        sync.Mutex
	window    time.Duration
	limit     int
	interval  time.Duration
	now       func() time.Time
	clients   map[string]*limiterEntry
	lastSweep time.Time
}

// NewMemoryRateLimiter permite limit requests por ventana y cliente, con ráfagas de hasta limit.
func NewMemoryRateLimiter(window time.Duration, limit int) RateLimiter {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &memoryRateLimiter{
		window:   window,
		limit:    limit,
		interval: window / time.Duration(limit),
		now:      time.Now,
		clients:  make(map[string]*limiterEntry),
	}
}

func (l *memoryRateLimiter) Allow(_ context.Context, clientKey string) RateDecision {
	clientKey = strings.TrimSpace(clientKey)
	if clientKey == "" {
		return RateDecision{Limit: l.limit, RetryAfter: l.window}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evictIdle(now)

	entry, ok := l.clients[clientKey]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rate.Every(l.interval), l.limit)}
		l.clients[clientKey] = entry
	}
	entry.lastSeen = now

	d := RateDecision{Limit: l.limit}
	if entry.limiter.AllowN(now, 1) {
		d.Allowed = true
	} else {
		missing := 1 - entry.limiter.TokensAt(now)
		d.RetryAfter = time.Duration(missing * float64(l.interval))
	}
	d.Remaining = int(entry.limiter.TokensAt(now))
	return d
}

// evictIdle recorre el mapa como mucho una vez por ventana.
func (l *memoryRateLimiter) evictIdle(now time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	for key, entry := range l.clients {
		if now.Sub(entry.lastSeen) >= l.window {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
}
