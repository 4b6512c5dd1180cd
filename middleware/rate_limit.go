package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
)

// RateLimitConfig defines the configuration for rate limiting
type RateLimitConfig struct {
	// Requests is the maximum number of requests allowed within the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
	// KeyFunc is a function that returns a unique key for rate limiting (defaults to IP)
	KeyFunc func(c echo.Context) string
	// Message is the error message returned when rate limit is exceeded
	Message string
}

// RateLimiter is a fixed window, per-key rate limiter.
// Counters live in an expiring cache so stale keys disappear with their window.
type RateLimiter struct {
	config RateLimitConfig
	store  *cache.Cache
}

// NewRateLimiter creates a new rate limiter with the given configuration
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}
	if config.Message == "" {
		config.Message = "Too many requests. Please try again later."
	}

	return &RateLimiter{
		config: config,
		store:  cache.New(config.Window, time.Minute),
	}
}

// Allow counts one request for key and reports whether it is within the limit
func (rl *RateLimiter) Allow(key string) bool {
	// First request of a window
	if err := rl.store.Add(key, 1, rl.config.Window); err == nil {
		return true
	}

	count, err := rl.store.IncrementInt(key, 1)
	if err != nil {
		// The window expired between Add and IncrementInt
		rl.store.Set(key, 1, rl.config.Window)
		return true
	}
	return count <= rl.config.Requests
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if rl.Allow(rl.config.KeyFunc(c)) {
				return next(c)
			}

			if IsAJAX(c) {
				return c.JSON(http.StatusTooManyRequests, ajaxFailure(rl.config.Message))
			}
			return echo.NewHTTPError(http.StatusTooManyRequests, rl.config.Message)
		}
	}
}

// NewLoginRateLimiter limits login attempts per IP per minute
func NewLoginRateLimiter(attempts int) *RateLimiter {
	if attempts < 1 {
		attempts = 5
	}
	return NewRateLimiter(RateLimitConfig{
		Requests: attempts,
		Window:   1 * time.Minute,
		Message:  "Too many login attempts. Please wait a minute before trying again.",
	})
}

// NewAjaxRateLimiter limits admin AJAX calls to 120 per minute per IP
func NewAjaxRateLimiter() *RateLimiter {
	return NewRateLimiter(RateLimitConfig{
		Requests: 120,
		Window:   1 * time.Minute,
		Message:  "Rate limit exceeded. Please slow down your requests.",
	})
}
