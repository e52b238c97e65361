/*
Package ranger initializes and manages a hello app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New],
which wires together the logger, the request parser, the responder, the router
and the handlers of package handler.

[*Ranger.Guide] begins a hello app's web server.
By default, [*Ranger.Guide] listens on [DefaultPort] (:8080).

Upon calling [*Ranger.Guide], all routes configured up to that point are now active.
Stop that web server with [*Ranger.Shutdown],
call the context.CancelFunc returned by [*Ranger.Cancel],
or send a signal [*Ranger.Guide] listens for.

# Configuration

A developer configures a hello app through environment variables, read by [NewConfig],
or by passing a [Config] to [WithConfig].

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - BASE_URL: the base URL the application runs on; default: http://HOST:PORT
  - ENVIRONMENT: the environment the application is running in; cf. [hello.Environment]
  - HOST: the host the application is running on; default: localhost
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - MAX_BODY_SIZE: the largest request body, in bytes, the application reads; default: 1048576
  - PORT: the port the application should listen on; default: :8080
  - RATE_LIMIT: the requests per second an IP address can make; default: 5
  - RATE_LIMIT_BURST: the requests an IP address can make at once; default: 20
  - SENTRY_DSN: the DSN errors are reported to Sentry with; no reporting when empty
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
  - STRICT_JSON: whether JSON bodies holding unknown fields are rejected; default: false
*/
package ranger
