package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hello/http/middleware"
)

func noopHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
}

func TestChain(t *testing.T) {
	// Arrange
	var order []string
	adapter := func(name string) middleware.Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				h.ServeHTTP(w, r)
			})
		}
	}

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { order = append(order, "handler") })

	// Act
	middleware.Chain(h, adapter("first"), adapter("second"), middleware.NoopAdapter).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "https://example.com", nil))

	// Assert
	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestNoopAdapter(t *testing.T) {
	h := noopHandler()
	require.Equal(t, fmt.Sprintf("%p", h), fmt.Sprintf("%p", middleware.NoopAdapter(h)))
}
