package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xy-planning-network/hello"
)

// RequestIDHeader is the response header RequestID echoes the ID of the request in.
const RequestIDHeader = "X-Request-Id"

// RequestID adds a uuid to the request context under hello.RequestIDKey
// and sets it on the response in the "X-Request-Id" header.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			w.Header().Set(RequestIDHeader, id)

			ctx := context.WithValue(r.Context(), hello.RequestIDKey, id)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
