package http

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultClientIdleTTL is how long a client may stay silent before its
// bucket is forgotten.
const DefaultClientIdleTTL = 10 * time.Minute

// ClientLimiter throttles requests per client using token buckets.
// Each client key (usually the remote IP) gets its own limiter, so one busy
// client cannot exhaust the budget of another.
//
// Buckets of clients idle for longer than the idle TTL are dropped, at most
// once per TTL and on the request path. A returning client starts again
// with a full burst.
type ClientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientBucket
	rps       float64
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewClientLimiter creates a ClientLimiter allowing rps requests per second
// per client with the given burst. A burst below 1 is raised to 1 and a
// non-positive idleTTL means DefaultClientIdleTTL.
func NewClientLimiter(rps float64, burst int, idleTTL time.Duration) *ClientLimiter {
	if idleTTL <= 0 {
		idleTTL = DefaultClientIdleTTL
	}
	return &ClientLimiter{
		clients:   make(map[string]*clientBucket),
		rps:       rps,
		burst:     max(burst, 1),
		idleTTL:   idleTTL,
		lastSweep: time.Now(),
	}
}

// Allow reports whether a request from client may proceed now.
func (l *ClientLimiter) Allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.sweep(now)

	b, ok := l.clients[client]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
		l.clients[client] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

// Len returns the number of clients currently tracked.
func (l *ClientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// sweep drops idle clients. The caller holds l.mu.
func (l *ClientLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idleTTL {
		return
	}
	l.lastSweep = now
	for client, b := range l.clients {
		if now.Sub(b.lastSeen) >= l.idleTTL {
			delete(l.clients, client)
		}
	}
}
