package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/2beens/gymlog/internal/telemetry/metrics"
)

func RequestMetrics(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			begin := time.Now()
			resp := newStatusRecorder(respWriter)

			next.ServeHTTP(resp, req)

			status := strconv.Itoa(resp.statusCode)
			metricsManager.HistogramRequestDuration.With(prometheus.Labels{
				"route":       routeTemplate(req),
				"method":      req.Method,
				"status_code": status,
			}).Observe(time.Since(begin).Seconds())
			metricsManager.CounterRequests.With(prometheus.Labels{
				"method": req.Method,
				"status": status,
			}).Inc()
		})
	}
}

// routeTemplate keeps label cardinality bounded: /sessions/{id}, not /sessions/42.
func routeTemplate(req *http.Request) string {
	route := mux.CurrentRoute(req)
	if route == nil {
		return "unknown"
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return "unknown"
	}
	return tpl
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.statusCode = statusCode
}
