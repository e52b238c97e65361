package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/hello"
	"github.com/xy-planning-network/hello/http/middleware"
)

// A Route maps a path and HTTP methods to an [http.Handler].
// A Route with no Methods matches a request of any method.
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Methods     []string
	Handler     http.Handler
	Middlewares []middleware.Adapter
}

// Router routes requests to the handlers of the Routes registered with it.
type Router struct {
	Env           hello.Environment
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
//
// logReq is applied to requests matching no Route.
// A nil logReq is replaced with [middleware.NoopAdapter].
func New(env hello.Environment, logReq middleware.Adapter) *Router {
	if logReq == nil {
		logReq = middleware.NoopAdapter
	}

	return &Router{Env: env, logReq: logReq, r: mux.NewRouter()}
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleMethodNotAllowed sets the provided [http.Handler] as the function
// for when a request matches the path of a Route but none of its methods.
func (r *Router) HandleMethodNotAllowed(handler http.Handler) {
	r.r.MethodNotAllowedHandler = middleware.Chain(
		handler,
		middleware.ReportPanic(r.Env),
		r.logReq,
	)
}

// HandleNotFound sets the provided [http.Handler] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.Handler) {
	r.r.NotFoundHandler = middleware.Chain(
		handler,
		middleware.ReportPanic(r.Env),
		r.logReq,
	)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := make([]middleware.Adapter, 0, len(r.everyReqStack)+len(middlewares)+len(route.Middlewares)+1)
		mws = append(mws, middleware.ReportPanic(r.Env))
		mws = append(mws, r.everyReqStack...)
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)

		mr := r.r.Handle(route.Path, middleware.Chain(route.Handler, mws...))
		if len(route.Methods) > 0 {
			mr.Methods(route.Methods...)
		}
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
//
// Only Routes handled after calling OnEveryRequest include the middlewares.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// Paths lists the path templates of every Route registered, in order.
func (r *Router) Paths() []string {
	var paths []string
	_ = r.r.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		if tmpl, err := route.GetPathTemplate(); err == nil && route.GetHandler() != nil {
			paths = append(paths, tmpl)
		}

		return nil
	})

	return paths
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/api/v1") handles requests to endpoints like /api/v1/users
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		Env:           r.Env,
		r:             r.r.PathPrefix(prefix).Subrouter(),
		logReq:        r.logReq,
		everyReqStack: append([]middleware.Adapter(nil), r.everyReqStack...),
	}
}
