package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// Idle client buckets older than this are dropped by the cleanup loop.
	bucketIdleThreshold = 1 * time.Hour
	cleanupInterval     = 30 * time.Minute
)

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter is a token-bucket limiter keyed by client IP. Each client
// gets a budget of capacity requests per refill window.
type RateLimiter struct {
	mu        sync.Mutex
	capacity  int
	refillDur time.Duration
	buckets   map[string]*clientBucket
	stop      chan struct{}
}

// NewRateLimiter starts a limiter allowing capacity requests per client
// per refill window, with a background sweep of idle buckets. Call Stop
// when the server shuts down.
func NewRateLimiter(capacity int, refillDur time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:  capacity,
		refillDur: refillDur,
		buckets:   make(map[string]*clientBucket),
		stop:      make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stop:
			return
		}
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for ip, bucket := range rl.buckets {
		if now.Sub(bucket.lastRefill) > bucketIdleThreshold {
			delete(rl.buckets, ip)
		}
	}
}

// Stop ends the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Allow reports whether the client identified by ip has budget left,
// consuming one token when it does.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	bucket, exists := rl.buckets[ip]

	if !exists {
		rl.buckets[ip] = &clientBucket{
			tokens:     rl.capacity - 1,
			lastRefill: now,
		}
		return true
	}

	if now.Sub(bucket.lastRefill) >= rl.refillDur {
		bucket.tokens = rl.capacity
		bucket.lastRefill = now
	}

	if bucket.tokens <= 0 {
		return false
	}

	bucket.tokens--
	return true
}

type contextKey string

const requestIDKey contextKey = "requestID"

// RequestIDFrom returns the request id stored by the RequestID
// middleware, or an empty string.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequestID assigns each request a uuid, honoring an X-Request-ID the
// client already sent, and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the status code a handler writes so the
// logging middleware can report it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// RequestLog logs one line per request with method, path, status,
// duration, and request id.
func RequestLog(logger *zap.Logger, next http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		logger.Info("request handled",
			zap.String("op", "server.RequestLog"),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", recorder.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("requestId", RequestIDFrom(r.Context())),
		)
	})
}

// Recover turns handler panics into 500 responses instead of dropped
// connections.
func Recover(logger *zap.Logger, next http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			logger.Error("handler panicked",
				zap.String("op", "server.Recover"),
				zap.String("path", r.URL.Path),
				zap.Any("panic", rec),
				zap.ByteString("stack", debug.Stack()),
				zap.String("requestId", RequestIDFrom(r.Context())),
			)
			writeMiddlewareError(w, http.StatusInternalServerError, "internal server error")
		}()

		next.ServeHTTP(w, r)
	})
}

// RateLimit rejects requests from clients that exhausted their budget.
func RateLimit(limiter *RateLimiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !limiter.Allow(ip) {
			writeMiddlewareError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Chain wraps the API handler in the standard middleware stack. A nil
// limiter disables rate limiting.
func Chain(next http.Handler, logger *zap.Logger, limiter *RateLimiter) http.Handler {
	h := next
	if limiter != nil {
		h = RateLimit(limiter, h)
	}
	h = Recover(logger, h)
	h = RequestLog(logger, h)
	h = RequestID(h)
	return h
}

func writeMiddlewareError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
