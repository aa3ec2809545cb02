package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtracker/internal/telemetry/metrics"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit lets allowedPerMin requests per minute through for key, counted
// over all clients. A rejected request gets 429 and Retry-After in whole
// seconds.
func RateLimit(
	rateLimiter RequestRateLimiter,
	key string,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	limit := redis_rate.PerMinute(allowedPerMin)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			res, err := rateLimiter.Allow(req.Context(), key, limit)
			if err != nil {
				log.Errorf("rate limit [%s]: %s", key, err)
				http.Error(w, "rate limit internal error", http.StatusInternalServerError)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit.Rate))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(res.Remaining, 0)))
			if res.Allowed > 0 {
				next.ServeHTTP(w, req)
				return
			}

			retryAfter := int(math.Ceil(res.RetryAfter.Seconds()))
			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}
			log.WithFields(log.Fields{
				"key":         key,
				"retry_after": retryAfter,
			}).Warn("rate limited")
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			http.Error(w, fmt.Sprintf("rate limited, retry after %d seconds", retryAfter), http.StatusTooManyRequests)
		})
	}
}
