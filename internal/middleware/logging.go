package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
				r.Header.Set(RequestIDHeader, requestID)
			}
			w.Header().Set(RequestIDHeader, requestID)

			entry := log.WithFields(log.Fields{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
			})
			entry.Tracef(" ====> request [UA: %s]", r.Header.Get("User-Agent"))

			begin := time.Now()
			resp := newStatusRecorder(w)
			next.ServeHTTP(resp, r)

			entry.WithField("status", resp.statusCode).Debugf(" <==== done in %s", time.Since(begin))
		})
	}
}
