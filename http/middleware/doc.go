/*
The middleware package defines what a middleware is in hello and a set of basic middlewares.

The available middlewares are:
  - CORS
  - ForceHTTPS
  - InjectIPAddress
  - LogRequest
  - RateLimit
  - ReportPanic
  - RequestID

The default middleware chain serving every request looks like this:

	vs := middleware.NewVisitors()
	adpts := []middleware.Adapter{
		middleware.ReportPanic(env),
		middleware.RateLimit(vs),
		middleware.ForceHTTPS(env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.CORS(baseURL),
	}
*/
package middleware
