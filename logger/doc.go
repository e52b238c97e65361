/*
Package logger provides logging functionality to a hello app by defining the required behavior in [Logger]
and providing an implementation of it with [AppLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An [AppLogger] initialized with [LogLevelWarn]
only emits messages from [*AppLogger.Warn], [*AppLogger.Error], and [*AppLogger.Fatal].

Log messages emitted by [AppLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2026/04/28 15:55:21 [INFO] handler/request_param.go:43 'username = kim, age = 20' log_context: {"data":{"age":20,"username":"kim"}}

The call site is the file, line number and parent directory of the calling code.
The log context is a JSON-encoded [LogContext].

# SentryLogger

[NewSentryLogger] wraps an [AppLogger] and additionally reports the errors
set in a [LogContext] at warn level and above to Sentry.
*/
package logger
