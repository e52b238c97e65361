package resp

import (
	"net/http"

	"github.com/xy-planning-network/hello"
	"github.com/xy-planning-network/hello/logger"
)

// newLogContext helps structure a logger.LogContext from the provided parts.
//
// When the request carries an ID, newLogContext includes it in the data.
func newLogContext(r *http.Request, err error, data map[string]any) *logger.LogContext {
	if r == nil && err == nil && data == nil {
		return nil
	}

	ctx := &logger.LogContext{Request: r, Error: err}
	if r != nil {
		if id, ok := r.Context().Value(hello.RequestIDKey).(string); ok && id != "" {
			if data == nil {
				data = make(map[string]any)
			}
			data["requestID"] = id
		}
	}

	if len(data) > 0 {
		ctx.Data = data
	}

	return ctx
}
