/*
Package router defines how requests reach the handlers of an HTTP server.

[*Router] utilizes [mux.Router] for its implementation,
and so functions as thin wrapper around that package.

A [Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and HTTP methods comprise a [Route].
An implementation of [http.Handler] is the function called when a request matches a Route.
Before a request gets to a handler, though,
any middlewares added to the Route are called in the order they appear.

It is often the case that many routes for a web server share identical middleware stacks.
Thus, a [Router] provides conveniences for making a single call to register many logically associated Routes
and for applying middlewares to every request.
*/
package router
