package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/rationshop-api/internal/application/dto"
)

const limiterIdleTTL = 10 * time.Minute

// LoginLimiter keeps one token bucket per client IP.
type LoginLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	visitors map[string]*visitor
	now      func() time.Time

	// OnReject is called for each throttled request (metrics hook).
	OnReject func()
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLoginLimiter allows perMinute attempts per IP with the given burst. A non-positive
// perMinute disables throttling.
func NewLoginLimiter(perMinute, burst int) *LoginLimiter {
	if burst <= 0 {
		burst = 1
	}
	l := rate.Inf
	if perMinute > 0 {
		l = rate.Limit(float64(perMinute) / 60)
	}
	return &LoginLimiter{limit: l, burst: burst, visitors: map[string]*visitor{}, now: time.Now}
}

// Allow reports whether ip may attempt a login now.
func (l *LoginLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	v, ok := l.visitors[ip]
	if !ok {
		l.sweep(now)
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// sweep drops visitors idle for longer than limiterIdleTTL. Callers hold mu.
func (l *LoginLimiter) sweep(now time.Time) {
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) > limiterIdleTTL {
			delete(l.visitors, ip)
		}
	}
}

// Middleware answers 429 once the caller's bucket is empty.
func (l *LoginLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if l.Allow(c.IP()) {
			return c.Next()
		}
		if l.OnReject != nil {
			l.OnReject()
		}
		c.Set(fiber.HeaderRetryAfter, "60")
		return c.Status(fiber.StatusTooManyRequests).JSON(dto.Fail("TOO_MANY_REQUESTS", "Too many login attempts. Try again later."))
	}
}
