package ranger

import (
	"context"
	"io"
	"log"
	"net"
	"net/http"

	"github.com/xy-planning-network/hello/http/middleware"
	"github.com/xy-planning-network/hello/http/req"
	"github.com/xy-planning-network/hello/http/resp"
	"github.com/xy-planning-network/hello/http/router"
	"github.com/xy-planning-network/hello/logger"
	"golang.org/x/time/rate"
)

// defaultAppLogger constructs a [logger.Logger] configured for use in the application.
//
// When SENTRY_DSN is set, the logger reports errors to Sentry.
func defaultAppLogger(cfg Config, output io.Writer) logger.Logger {
	al := logger.New(
		logger.WithEnv(cfg.Env.String()),
		logger.WithLevel(cfg.LogLevel),
		logger.WithLogger(log.New(output, "", log.LstdFlags)),
	)
	al.Debug("setting up app logger", nil)

	if cfg.SentryDSN == "" {
		return al
	}

	l := logger.NewSentryLogger(al, cfg.SentryDSN)
	l.Debug("using SentryLogger for app logger", nil)

	return l
}

// defaultParser constructs the [*req.Parser] every handler decodes requests with.
func defaultParser(cfg Config) *req.Parser {
	opts := []req.ParserOptFn{req.WithMaxBodySize(cfg.MaxBodySize)}
	if cfg.StrictJSON {
		opts = append(opts, req.WithStrictJSON())
	}

	return req.NewParser(opts...)
}

// defaultResponder configures the [*resp.Responder] to be used by http.Handlers.
func defaultResponder(l logger.Logger) *resp.Responder {
	return resp.NewResponder(resp.WithLogger(l))
}

// defaultMiddlewares lists the middlewares applied to every request, in order.
func defaultMiddlewares(cfg Config, l logger.Logger) []middleware.Adapter {
	vs := middleware.NewVisitorsWithLimit(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	var origin string
	if cfg.BaseURL != nil {
		origin = cfg.BaseURL.Scheme + "://" + cfg.BaseURL.Host
	}

	return []middleware.Adapter{
		middleware.RateLimit(vs),
		middleware.ForceHTTPS(cfg.Env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(l),
		middleware.CORS(origin),
	}
}

// defaultRouter constructs a [*router.Router] to be used by the web server.
func defaultRouter(cfg Config, l logger.Logger, mws []middleware.Adapter) *router.Router {
	route := router.New(cfg.Env, middleware.LogRequest(l))
	route.OnEveryRequest(mws...)
	route.HandleNotFound(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		http.NotFound(wx, rx)
	}))

	return route
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context, cfg Config) *http.Server {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		IdleTimeout:  cfg.IdleTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}
