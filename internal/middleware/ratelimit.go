package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// clientWindow tracks one client's request count inside the current
// fixed window.
type clientWindow struct {
	count       int
	windowStart time.Time
}

// windowLimiter is a fixed-window request counter keyed by client address.
// Bursts straddling a window boundary can pass at up to twice the limit; that
// imprecision is accepted in exchange for O(1) state per client.
type windowLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	limit   int
	window  time.Duration
}

func newWindowLimiter(limit int, window time.Duration) *windowLimiter {
	l := &windowLimiter{
		clients: make(map[string]*clientWindow),
		limit:   limit,
		window:  window,
	}
	go l.sweep()
	return l
}

// allow performs one check-and-increment for the given client key.
func (l *windowLimiter) allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	cw, ok := l.clients[key]
	if !ok || now.Sub(cw.windowStart) >= l.window {
		l.clients[key] = &clientWindow{count: 1, windowStart: now}
		return true
	}

	cw.count++
	return cw.count <= l.limit
}

// sweep evicts clients whose window has long elapsed, bounding memory under
// many distinct client addresses.
func (l *windowLimiter) sweep() {
	for {
		time.Sleep(l.window)
		cutoff := time.Now().Add(-2 * l.window)

		l.mu.Lock()
		for key, cw := range l.clients {
			if cw.windowStart.Before(cutoff) {
				delete(l.clients, key)
			}
		}
		l.mu.Unlock()
	}
}

// RateLimit returns middleware that allows at most limit requests per client
// IP within each fixed window, responding 429 beyond that. Each call creates
// an independent bucket, so auth routes and general API routes can be
// throttled separately.
func RateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	limiter := newWindowLimiter(limit, window)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiter.allow(ip) {
				writeJSONError(w, http.StatusTooManyRequests, "too many requests, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
