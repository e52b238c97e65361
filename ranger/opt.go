package ranger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/hello/logger"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some RangerOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithConfig is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// WithServer is an example of the second.
// An unexported field on the passed in *Ranger
// is updated only when the closure it returns is called.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

// WithConfig replaces the Config read from environment variables.
func WithConfig(cfg Config) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if err := cfg.Valid(); err != nil {
			return nil, err
		}

		rng.cfg = cfg
		return nil, nil
	}
}

// WithContext exposes the provided context.Context to the hello app.
// Cancelling ctx stops Guide.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if ctx == nil {
			return nil, fmt.Errorf("nil context")
		}

		rng.ctx = ctx
		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the hello app
// in place of the default one.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if l == nil {
			return nil, fmt.Errorf("nil logger")
		}

		rng.l = l
		return nil, nil
	}
}

// WithServer constructs a followup option that, when called,
// exposes the *http.Server to the hello app in place of the default one.
// The handler of s is replaced with the Ranger's router.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if s == nil {
			return nil, fmt.Errorf("nil server")
		}

		return func() error {
			rng.srv = s
			rng.srv.Handler = rng.Router
			rng.l.Debug(fmt.Sprintf("using server at %q", s.Addr), nil)

			return nil
		}, nil
	}
}
