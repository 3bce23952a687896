package middleware

import (
	"context"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=middleware_mocks_test.go -package=middleware_test

const AuthTokenHeader = "X-GYMLOG-TOKEN"

type identityResolver interface {
	Resolve(ctx context.Context, token string) (auth.Identity, error)
}

type AuthMiddlewareHandler struct {
	resolver     identityResolver
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(resolver identityResolver, allowedPaths ...string) *AuthMiddlewareHandler {
	h := &AuthMiddlewareHandler{
		resolver:     resolver,
		allowedPaths: map[string]bool{},
	}
	for _, p := range allowedPaths {
		h.allowedPaths[p] = true
	}
	return h
}

// AuthCheck resolves the caller from the session token and stores the
// identity in the request context.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := r.Header.Get(AuthTokenHeader)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			identity, err := h.resolver.Resolve(ctx, authToken)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidToken) {
					log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
					http.Error(w, "no can do", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "invalid-token")
					return
				}
				log.Errorf("[failed identity resolve] => %s: %s", r.URL.Path, err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				span.SetStatus(codes.Error, "resolve-identity-err")
				span.RecordError(err)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}
