package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/rajdesai17/finplay/internal/security"
)

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// RateLimit rejects requests over the per-client budget. Applied to
// mutation endpoints only; reads are unthrottled.
func RateLimit(limiter *security.RateLimiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow(security.ClientIP(r)) {
			respondWithError(w, http.StatusTooManyRequests, "Too many requests", "", nil)
			return
		}
		next(w, r)
	}
}
