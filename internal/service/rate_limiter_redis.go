package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateDecision es la respuesta del limitador para una request.
// Limit en cero significa que no hubo cuota que informar (limitador ausente o caído).
type RateDecision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter decide si un cliente puede hacer otra request a la API del explorador.
type RateLimiter interface {
	Allow(ctx context.Context, clientKey string) RateDecision
}

// Devuelve {contador, ms hasta que cierra la ventana}.
const redisRateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`

const redisRateLimitPrefix = "explorer:rl:"

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// redisRateLimiter cuenta requests por cliente en ventanas fijas compartidas entre réplicas.
type redisRateLimiter struct {
	client redisEvaler
	window time.Duration
	limit  int
}

// NewRedisRateLimiter crea el limitador sobre Redis. Con client nil devuelve nil.
func NewRedisRateLimiter(client *redis.Client, window time.Duration, limit int) RateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if limit <= 0 {
		limit = 1
	}
	return &redisRateLimiter{client: client, window: window, limit: limit}
}

// Allow falla abierto: si Redis no responde la request pasa sin cuota informada.
func (l *redisRateLimiter) Allow(ctx context.Context, clientKey string) RateDecision {
	if l == nil || l.client == nil {
		return RateDecision{Allowed: true}
	}
	clientKey = strings.TrimSpace(clientKey)
	if clientKey == "" {
		return RateDecision{Limit: l.limit, RetryAfter: l.window}
	}

	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	res, err := l.client.Eval(ctx, redisRateLimitScript, []string{redisRateLimitPrefix + clientKey}, l.window.Milliseconds()).Int64Slice()
	if err != nil || len(res) != 2 {
		return RateDecision{Allowed: true}
	}

	count := int(res[0])
	d := RateDecision{
		Allowed:   count <= l.limit,
		Limit:     l.limit,
		Remaining: max(l.limit-count, 0),
	}
	if !d.Allowed {
		d.RetryAfter = time.Duration(res[1]) * time.Millisecond
		if d.RetryAfter <= 0 {
			d.RetryAfter = l.window
		}
	}
	return d
}
