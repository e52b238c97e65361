package ranger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/hello"
	"github.com/xy-planning-network/hello/http/handler"
	"github.com/xy-planning-network/hello/http/req"
	"github.com/xy-planning-network/hello/http/resp"
	"github.com/xy-planning-network/hello/http/router"
	"github.com/xy-planning-network/hello/logger"
)

const shutdownTimeout = 5 * time.Second

// A Ranger manages and exposes all components of a hello app to one another.
type Ranger struct {
	*resp.Responder
	*router.Router

	cfg    Config
	ctx    context.Context
	cancel context.CancelFunc
	l      logger.Logger
	p      *req.Parser
	srv    *http.Server
}

// New constructs a Ranger from the provided options.
// The Config comes from environment variables unless WithConfig sets it.
//
// New registers the routes of every handler in package handler
// behind the default middleware stack.
func New(opts ...RangerOption) (*Ranger, error) {
	r := &Ranger{cfg: NewConfig()}
	followups := make([]OptFollowup, 0)

	// NOTE: calling an option configures the *Ranger under construction.
	// Options returning an OptFollowup run once the defaults below are in place.
	for _, opt := range opts {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", hello.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	if err := r.cfg.Valid(); err != nil {
		return nil, err
	}

	if r.ctx == nil {
		r.ctx = context.Background()
	}
	r.ctx, r.cancel = context.WithCancel(r.ctx)

	if r.l == nil {
		r.l = defaultAppLogger(r.cfg, os.Stdout)
	}

	r.p = defaultParser(r.cfg)
	r.Responder = defaultResponder(r.l)
	r.Router = defaultRouter(r.cfg, r.l, defaultMiddlewares(r.cfg, r.l))

	h, err := handler.New(r.Responder, r.p, r.l)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", hello.ErrBadConfig, err)
	}
	r.HandleRoutes(h.Routes())

	r.srv = defaultServer(r.ctx, r.cfg)
	r.srv.Handler = r.Router

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", hello.ErrBadConfig, err)
		}
	}

	return r, nil
}

// Cancel returns the context.CancelFunc stopping Guide.
func (r *Ranger) Cancel() context.CancelFunc { return r.cancel }

func (r *Ranger) EmitConfig() Config        { return r.cfg }
func (r *Ranger) EmitLogger() logger.Logger { return r.l }
func (r *Ranger) EmitParser() *req.Parser   { return r.p }

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
//   - os.Interrupt
//   - syscall.SIGHUP
//   - syscall.SIGINT
//   - syscall.SIGQUIT
//   - syscall.SIGTERM
//   - calling the context.CancelFunc Cancel returns
func (r *Ranger) Guide() error {
	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			r.cancel()
		case <-r.ctx.Done():
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", r.cfg.BaseURL), nil)
		if err := r.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not listen: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		r.l.Error(err.Error(), nil)
		r.cancel()
		return err
	case <-r.ctx.Done():
	}

	return r.Shutdown()
}

// Shutdown shutdowns the web server.
func (r *Ranger) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	err := r.srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.cancel()
	r.l.Info("web server shutdown successfully", nil)
	return nil
}
