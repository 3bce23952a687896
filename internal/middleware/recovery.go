package middleware

import (
	"net/http"
	"runtime/debug"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymlog/internal/telemetry/metrics"
)

// PanicRecovery turns a handler panic into a 500 and counts it per route template.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				route := routeTemplate(req)
				log.WithFields(log.Fields{
					"request_id": req.Header.Get(RequestIDHeader),
					"route":      route,
					"method":     req.Method,
				}).Errorf("gymlog handler panicked: %v\n%s", recovered, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.WithLabelValues(route).Inc()
				}
				http.Error(w, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, req)
		})
	}
}
