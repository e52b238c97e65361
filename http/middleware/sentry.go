package middleware

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/hello"
)

// ReportPanic recovers panics in the handler it wraps, reports them to Sentry
// and responds with 500 Internal Server Error.
//
// In development, ReportPanic does nothing and panics travel up to net/http.
func ReportPanic(env hello.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: true,
	})

	return func(h http.Handler) http.Handler {
		return sh.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// NOTE: sentryhttp swallows the panic without writing a response.
			defer func() {
				if rec := recover(); rec != nil {
					w.WriteHeader(http.StatusInternalServerError)
					panic(rec)
				}
			}()

			h.ServeHTTP(w, r)
		}))
	}
}
