package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout returns a middleware that bounds request handling time by deadline
// on the request context. Handlers observe the cancellation through their
// store and relay calls.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
