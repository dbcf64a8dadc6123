package httpserver

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// DefaultLimiterIdle is how long a client's bucket survives without traffic.
const DefaultLimiterIdle = 10 * time.Minute

type visitor struct {
	lim  *rate.Limiter
	seen atomic.Int64 // unix nanos of the last request
}

// RateLimiter keeps one token bucket per client address. Buckets idle for
// longer than the idle window are dropped on the next sweep.
type RateLimiter struct {
	limiters sync.Map // map[string]*visitor
	rps      float64
	burst    int

	idle      time.Duration
	lastSweep atomic.Int64
	now       func() time.Time
}

// NewRateLimiter returns nil when rps is not positive, which disables
// limiting.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if rps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 5
	}
	l := &RateLimiter{rps: rps, burst: burst, idle: DefaultLimiterIdle, now: time.Now}
	l.lastSweep.Store(l.now().UnixNano())
	return l
}

func (l *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := l.now()
	l.sweep(now)

	v, ok := l.limiters.Load(key)
	if !ok {
		v, _ = l.limiters.LoadOrStore(key, &visitor{lim: rate.NewLimiter(rate.Limit(l.rps), l.burst)})
	}
	vis := v.(*visitor)
	vis.seen.Store(now.UnixNano())
	return vis.lim
}

// sweep runs at most once per idle window; only the caller that wins the
// swap walks the map.
func (l *RateLimiter) sweep(now time.Time) {
	last := l.lastSweep.Load()
	if now.UnixNano()-last < int64(l.idle) {
		return
	}
	if !l.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}
	cutoff := now.Add(-l.idle).UnixNano()
	l.limiters.Range(func(k, v any) bool {
		if v.(*visitor).seen.Load() < cutoff {
			l.limiters.Delete(k)
		}
		return true
	})
}

// Middleware answers 429 once a client exhausts its bucket. Clients are
// keyed by connection address; proxy headers only count when the server
// trusts them and has rewritten RemoteAddr.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	if l == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.getLimiter(clientAddr(r)).Allow() {
			w.Header().Set("Retry-After", "1")
			writeMessage(w, http.StatusTooManyRequests, "Too many requests, slow down")
			return
		}
		next.ServeHTTP(w, r)
	})
}
