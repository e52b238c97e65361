package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hello/logger"
)

func TestLogContextMarshalText(t *testing.T) {
	// Arrange
	lc := logger.LogContext{}

	// Act
	b, err := lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, []byte("{}"), b)

	// Arrange
	lc = logger.LogContext{Data: map[string]any{"username": "kim"}}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"data":{"username":"kim"}}`, string(b))

	// Arrange
	lc = logger.LogContext{Error: errors.New("test")}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"error":"test"}`, string(b))

	// Arrange
	lc = logger.LogContext{Caller: "hello/main.go:1"}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, "{}", string(b))
}

func TestLogContextMarshalTextRequest(t *testing.T) {
	t.Run("Form", func(t *testing.T) {
		// Arrange
		expected := map[string]any{
			"request": map[string]any{
				"method": http.MethodPost,
				"url":    "https://example.com/request-param-v1?age=20",
				"header": map[string]any{
					"Content-Type": []any{"application/x-www-form-urlencoded"},
				},
				"form": map[string]any{
					"username": []any{"kim"},
					"age":      []any{"20"},
				},
			},
		}

		form := url.Values{}
		form.Set("username", "kim")
		r := httptest.NewRequest(http.MethodPost, "https://example.com/request-param-v1?age=20", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		require.Nil(t, r.ParseForm())

		lc := logger.LogContext{Request: r}

		// Act
		b, err := lc.MarshalText()

		// Assert
		require.Nil(t, err)
		m := make(map[string]any)
		require.Nil(t, json.Unmarshal(b, &m))
		require.Equal(t, expected, m)
	})

	t.Run("JSON", func(t *testing.T) {
		// Arrange
		body := `{"username":"hello","age":20}`
		expected := map[string]any{
			"request": map[string]any{
				"method": http.MethodPost,
				"url":    "https://example.com/request-body-json-v3",
				"header": map[string]any{
					"Content-Type": []any{"application/json; charset=utf-8"},
				},
				"json": map[string]any{
					"username": "hello",
					"age":      float64(20),
				},
			},
		}

		r := httptest.NewRequest(http.MethodPost, "https://example.com/request-body-json-v3", bytes.NewBufferString(body))
		r.Header.Set("Content-Type", "application/json; charset=utf-8")

		lc := logger.LogContext{Request: r}

		// Act
		b, err := lc.MarshalText()

		// Assert
		require.Nil(t, err)
		m := make(map[string]any)
		require.Nil(t, json.Unmarshal(b, &m))
		require.Equal(t, expected, m)

		restored, err := io.ReadAll(r.Body)
		require.Nil(t, err)
		require.Equal(t, body, string(restored))
	})

	t.Run("Bad-JSON", func(t *testing.T) {
		// Arrange
		body := `{"username":`
		r := httptest.NewRequest(http.MethodPost, "https://example.com/request-body-json-v3", bytes.NewBufferString(body))
		r.Header.Set("Content-Type", "application/json")

		lc := logger.LogContext{Request: r}

		// Act
		b, err := lc.MarshalText()

		// Assert
		require.Nil(t, err)
		require.NotContains(t, string(b), `"json"`)

		restored, err := io.ReadAll(r.Body)
		require.Nil(t, err)
		require.Equal(t, body, string(restored))
	})
}

func TestLogContextString(t *testing.T) {
	lc := logger.LogContext{Data: map[string]any{"age": 20}}
	require.Equal(t, `{"data":{"age":20}}`, lc.String())
}

func TestCurrentCaller(t *testing.T) {
	var actual string
	func() {
		actual = logger.CurrentCaller()
	}()

	require.Regexp(t, `^logger/context_test\.go:\d+$`, actual)
}
