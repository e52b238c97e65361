package middleware

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/xy-planning-network/hello"
	"github.com/xy-planning-network/hello/logger"
)

// A LogRequestRecord is what LogRequest logs about each request.
type LogRequestRecord struct {
	BodySize       int64  `json:"bodySize"`
	Duration       int64  `json:"duration"`
	Host           string `json:"host"`
	ID             string `json:"id,omitempty"`
	IPAddr         string `json:"ipAddr,omitempty"`
	Method         string `json:"method"`
	Path           string `json:"path"`
	Protocol       string `json:"protocol"`
	Referrer       string `json:"referrer,omitempty"`
	ReqContentType string `json:"reqContentType,omitempty"`
	Status         int    `json:"status"`
	URI            string `json:"uri"`
	UserAgent      string `json:"userAgent,omitempty"`
}

// LogRequest logs the request's method, requested URL, originating IP address,
// and the status and size of the response using the enclosed implementation of logger.Logger.
//
// LogRequest scrubs the values for the following keys:
//   - password
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(h, w, r)

			rec := newLogRequestRecord(r)
			rec.BodySize = m.Written
			rec.Duration = m.Duration.Milliseconds()
			rec.Status = m.Code

			ls.Info(rec.Method+" "+rec.URI, &logger.LogContext{Data: map[string]any{hello.LogKindKey: "http", "request": rec}})
		})
	}
}

// newLogRequestRecord reads the parts of r LogRequest logs.
func newLogRequestRecord(r *http.Request) LogRequestRecord {
	q := r.URL.Query()
	hello.Mask(q, "password")

	uri := r.URL.Path
	if query := q.Encode(); query != "" {
		uri += "?" + query
	}

	rec := LogRequestRecord{
		Host:           r.Host,
		Method:         r.Method,
		Path:           r.URL.Path,
		Protocol:       r.Proto,
		Referrer:       r.Referer(),
		ReqContentType: r.Header.Get("Content-Type"),
		URI:            uri,
		UserAgent:      r.UserAgent(),
	}

	if id, ok := r.Context().Value(hello.RequestIDKey).(string); ok {
		rec.ID = id
	}

	if ip, ok := r.Context().Value(hello.IpAddrKey).(string); ok {
		rec.IPAddr = ip
	}

	return rec
}
