package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit throttles mutating requests per caller. Reads pass through.
func RateLimit(
	rateLimiter RequestRateLimiter,
	routerName string,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			res, err := rateLimiter.Allow(
				r.Context(),
				routerName+":"+callerKey(r),
				redis_rate.PerMinute(allowedPerMin),
			)
			if err != nil {
				log.Errorf("rate limiter [%s]: %s", routerName, err)
				http.Error(w, "rate limit internal error", http.StatusInternalServerError)
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}
			http.Error(
				w,
				fmt.Sprintf("retry after %f seconds", res.RetryAfter.Seconds()),
				http.StatusTooManyRequests,
			)
		})
	}
}

func callerKey(r *http.Request) string {
	if identity, ok := auth.FromContext(r.Context()); ok {
		return "user:" + identity.UserID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "ip:" + r.RemoteAddr
	}
	return "ip:" + host
}
