package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/swedensai/seo-website/internal/config"
	"github.com/swedensai/seo-website/pkg/apperror"
)

// RateLimiter throttles form posts per client IP.
type RateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*visitor
	limit    rate.Limit
	burst    int
	idle     time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter from configuration. A disabled
// configuration yields nil, which lets every request through.
func NewRateLimiter(cfg *config.Config) *RateLimiter {
	if !cfg.RateLimit.Enabled() {
		return nil
	}
	burst := cfg.RateLimit.Burst
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*visitor),
		limit:    rate.Every(time.Minute / time.Duration(cfg.RateLimit.PerMinute)),
		burst:    burst,
		idle:     10 * time.Minute,
	}
}

// Allow reports whether a request from key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	if rl == nil {
		return true
	}
	return rl.getLimiter(key).Allow()
}

// getLimiter retrieves or creates the limiter for key
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := time.Now()

	rl.mu.RLock()
	v, exists := rl.limiters[key]
	rl.mu.RUnlock()
	if exists {
		rl.mu.Lock()
		v.lastSeen = now
		rl.mu.Unlock()
		return v.limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Double check, another request may have created it meanwhile
	if v, exists = rl.limiters[key]; exists {
		v.lastSeen = now
		return v.limiter
	}

	rl.evictIdle(now)
	v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst), lastSeen: now}
	rl.limiters[key] = v
	return v.limiter
}

// evictIdle drops limiters not used for a while. Caller holds mu.
func (rl *RateLimiter) evictIdle(now time.Time) {
	for key, v := range rl.limiters {
		if now.Sub(v.lastSeen) > rl.idle {
			delete(rl.limiters, key)
		}
	}
}

// Middleware throttles POST requests. Other methods pass untouched.
func (rl *RateLimiter) Middleware(eh *apperror.ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost && !rl.Allow(clientIP(r)) {
				w.Header().Set("Retry-After", "60")
				eh.Handle(w, r, apperror.ErrTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP expects middleware.RealIP to have run before.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
