package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"incubator/pkg/response"
)

// DefaultIdleTTL is how long a client's bucket survives without requests.
const DefaultIdleTTL = 5 * time.Minute

type clientBucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter rate-limits per client key, one token bucket each.
// Buckets idle longer than the TTL are dropped by Sweep.
type ClientLimiter struct {
	mu  sync.Mutex
	m   map[string]*clientBucket
	r   rate.Limit
	b   int
	ttl time.Duration
	now func() time.Time
}

func NewClientLimiter(reqPerSec float64, burst int) *ClientLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &ClientLimiter{
		m:   make(map[string]*clientBucket),
		r:   rate.Limit(reqPerSec),
		b:   burst,
		ttl: DefaultIdleTTL,
		now: time.Now,
	}
}

func (cl *ClientLimiter) limiterFor(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := cl.now()
	if cb, ok := cl.m[key]; ok {
		cb.lastSeen = now
		return cb.lim
	}
	cb := &clientBucket{lim: rate.NewLimiter(cl.r, cl.b), lastSeen: now}
	cl.m[key] = cb
	return cb.lim
}

func (cl *ClientLimiter) Allow(key string) bool {
	return cl.limiterFor(key).Allow()
}

// Sweep drops buckets idle for longer than the TTL and returns how many
// were removed. A dropped client starts again with a full burst.
func (cl *ClientLimiter) Sweep() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cutoff := cl.now().Add(-cl.ttl)
	removed := 0
	for key, cb := range cl.m {
		if cb.lastSeen.Before(cutoff) {
			delete(cl.m, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of tracked clients.
func (cl *ClientLimiter) Len() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return len(cl.m)
}

// RunJanitor sweeps every interval until ctx is done.
func (cl *ClientLimiter) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = cl.ttl
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cl.Sweep()
		}
	}
}

// RateLimit rejects requests over the client's budget with 429.
// Clients are keyed by IP.
func RateLimit(cl *ClientLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cl.Allow(c.ClientIP()) {
			response.Abort(c, http.StatusTooManyRequests, "too many requests, please slow down")
			return
		}
		c.Next()
	}
}
