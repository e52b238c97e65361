package resp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hello"
	"github.com/xy-planning-network/hello/logger"
)

func TestCode(t *testing.T) {
	// Arrange
	r := &Response{}

	// Act
	err := Code(http.StatusTeapot)(Responder{}, r)

	// Assert
	require.Nil(t, err)
	require.Equal(t, http.StatusTeapot, r.code)
}

func TestData(t *testing.T) {
	// Arrange
	r := &Response{}
	expected := hello.HelloData{Username: "hello", Age: 20}

	// Act
	err := Data(expected)(Responder{}, r)

	// Assert
	require.Nil(t, err)
	require.Equal(t, expected, r.data)
}

func TestErr(t *testing.T) {
	tcs := []struct {
		name string
		err  error
	}{
		{"Nil", nil},
		{"Err", errors.New("oops")},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			l := &captureLogger{}
			d := Responder{logger: l}
			r := &Response{r: httptest.NewRequest(http.MethodGet, "http://example.com", nil)}

			// Act
			err := Err(tc.err)(d, r)

			// Assert
			require.Nil(t, err)
			require.Equal(t, http.StatusInternalServerError, r.code)
			if tc.err == nil {
				require.Nil(t, l.ctx)
				return
			}

			require.Equal(t, tc.err.Error(), l.msg)
			require.ErrorIs(t, l.ctx.Error, tc.err)
			require.Equal(t, r.r, l.ctx.Request)
		})
	}
}

func TestNewLogContext(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	r = r.WithContext(context.WithValue(r.Context(), hello.RequestIDKey, "abc"))

	// Act
	actual := newLogContext(r, nil, nil)

	// Assert
	require.Equal(t, map[string]any{"requestID": "abc"}, actual.Data)
	require.Nil(t, newLogContext(nil, nil, nil))
}

type captureLogger struct {
	msg string
	ctx *logger.LogContext
}

func (l *captureLogger) Debug(msg string, ctx *logger.LogContext) {}
func (l *captureLogger) Error(msg string, ctx *logger.LogContext) { l.msg, l.ctx = msg, ctx }
func (l *captureLogger) Fatal(msg string, ctx *logger.LogContext) {}
func (l *captureLogger) Info(msg string, ctx *logger.LogContext)  {}
func (l *captureLogger) Warn(msg string, ctx *logger.LogContext)  {}
func (l *captureLogger) LogLevel() logger.LogLevel                { return logger.LogLevelDebug }
