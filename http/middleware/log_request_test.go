package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hello"
	"github.com/xy-planning-network/hello/http/middleware"
	"github.com/xy-planning-network/hello/logger"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	// Arrange
	ip := "192.168.0.0"
	testID := "test-id"
	useragent := "hello/test"
	content := "application/json"
	referrer := "example.com/referrer"
	respBody := "ok"
	newExpected := func(expected middleware.LogRequestRecord) middleware.LogRequestRecord {
		expected.BodySize = int64(len(respBody))
		expected.Host = "example.com"
		expected.ID = testID
		expected.Protocol = "HTTP/1.1"
		expected.Referrer = referrer
		expected.ReqContentType = content
		expected.Status = http.StatusAccepted
		expected.UserAgent = useragent

		return expected
	}

	tcs := []struct {
		name     string
		method   string
		ip       string
		url      *url.URL
		expected middleware.LogRequestRecord
	}{
		{
			"Zero-Value",
			http.MethodGet,
			"",
			&url.URL{Path: "/"},
			newExpected(middleware.LogRequestRecord{
				Method: http.MethodGet,
				Path:   "/",
				URI:    "/",
			}),
		},
		{
			"With-IP",
			http.MethodPost,
			ip,
			&url.URL{Path: "/"},
			newExpected(middleware.LogRequestRecord{
				IPAddr: ip,
				Method: http.MethodPost,
				Path:   "/",
				URI:    "/",
			}),
		},
		{
			"With-Query-Params",
			http.MethodGet,
			ip,
			&url.URL{Path: "/request-param-v1", RawQuery: "username=kim"},
			newExpected(middleware.LogRequestRecord{
				IPAddr: ip,
				Method: http.MethodGet,
				Path:   "/request-param-v1",
				URI:    "/request-param-v1?username=kim",
			}),
		},
		{
			"With-Query-Params-Hid",
			http.MethodGet,
			ip,
			&url.URL{Path: "/", RawQuery: "username=kim&password=hunter2"},
			newExpected(middleware.LogRequestRecord{
				IPAddr: ip,
				Method: http.MethodGet,
				Path:   "/",
				URI:    "/?password=" + hello.LogMaskVal + "&username=kim",
			}),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			l := new(recordLogger)
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, "http://example.com"+tc.url.String(), nil)
			r.Header.Set("Content-Type", content)
			r.Header.Set("Referer", referrer)
			r.Header.Set("User-Agent", useragent)

			ctx := context.WithValue(r.Context(), hello.RequestIDKey, testID)
			if tc.ip != "" {
				ctx = context.WithValue(ctx, hello.IpAddrKey, tc.ip)
			}
			r = r.WithContext(ctx)

			// Act
			middleware.LogRequest(l)(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				wx.WriteHeader(http.StatusAccepted)
				fmt.Fprint(wx, respBody)
			})).ServeHTTP(w, r)

			// Assert
			require.Equal(t, http.StatusAccepted, w.Code)
			require.Equal(t, tc.expected.Method+" "+tc.expected.URI, l.msg)
			require.Equal(t, "http", l.ctx.Data[hello.LogKindKey])

			rec, ok := l.ctx.Data["request"].(middleware.LogRequestRecord)
			require.True(t, ok)
			rec.Duration = 0
			require.Equal(t, tc.expected, rec)
		})
	}
}

type recordLogger struct {
	msg string
	ctx *logger.LogContext
}

func (l *recordLogger) Debug(msg string, ctx *logger.LogContext) {}
func (l *recordLogger) Error(msg string, ctx *logger.LogContext) {}
func (l *recordLogger) Fatal(msg string, ctx *logger.LogContext) {}
func (l *recordLogger) Info(msg string, ctx *logger.LogContext)  { l.msg, l.ctx = msg, ctx }
func (l *recordLogger) Warn(msg string, ctx *logger.LogContext)  {}
func (l *recordLogger) LogLevel() logger.LogLevel                { return logger.LogLevelDebug }
