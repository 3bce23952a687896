package middleware

import (
	"io"
	"net/http"
)

// LimitAndDrainRequest caps the request body at maxBytes and, once the handler
// returns, drains and closes whatever is left so the connection can be reused.
func LimitAndDrainRequest(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && maxBytes > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}

			next.ServeHTTP(w, r)

			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}
