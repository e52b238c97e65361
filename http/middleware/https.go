package middleware

import (
	"net/http"
	"net/url"

	"github.com/xy-planning-network/hello"
)

// ForceHTTPS redirects HTTP requests to HTTPS if the environment is not "DEVELOPMENT".
//
// A request served over TLS or holding "X-Forwarded-Proto: https",
// as set by a proxy in front of the application, passes through.
func ForceHTTPS(env hello.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				handler.ServeHTTP(w, r)
				return
			}

			u := new(url.URL)
			*u = *r.URL
			u.Scheme = "https"
			u.Host = r.Host

			http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
		})
	}
}
