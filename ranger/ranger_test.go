package ranger_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hello"
	"github.com/xy-planning-network/hello/logger"
	"github.com/xy-planning-network/hello/ranger"
)

func TestNewConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// Arrange
		for _, key := range []string{
			ranger.BaseURLEnvVar,
			ranger.EnvironmentEnvVar,
			ranger.HostEnvVar,
			ranger.LogLevelEnvVar,
			ranger.PortEnvVar,
			ranger.SentryDsnEnvVar,
		} {
			t.Setenv(key, "")
		}

		// Act
		cfg := ranger.NewConfig()

		// Assert
		require.Nil(t, cfg.Valid())
		require.Equal(t, hello.Development, cfg.Env)
		require.Equal(t, ranger.DefaultPort, cfg.Addr())
		require.Equal(t, "http://localhost:8080/", cfg.BaseURL.String())
		require.Equal(t, logger.LogLevelInfo, cfg.LogLevel)
		require.Equal(t, ranger.DefaultServerReadTimeout, cfg.ReadTimeout)
		require.False(t, cfg.StrictJSON)
	})

	t.Run("From-Env", func(t *testing.T) {
		// Arrange
		t.Setenv(ranger.EnvironmentEnvVar, "testing")
		t.Setenv(ranger.PortEnvVar, "9000")
		t.Setenv(ranger.LogLevelEnvVar, "debug")
		t.Setenv(ranger.ServerReadTimeoutEnvVar, "1s")
		t.Setenv(ranger.StrictJSONEnvVar, "true")
		t.Setenv(ranger.MaxBodySizeEnvVar, "512")

		// Act
		cfg := ranger.NewConfig()

		// Assert
		require.Nil(t, cfg.Valid())
		require.Equal(t, hello.Testing, cfg.Env)
		require.Equal(t, ":9000", cfg.Addr())
		require.Equal(t, logger.LogLevelDebug, cfg.LogLevel)
		require.Equal(t, time.Second, cfg.ReadTimeout)
		require.True(t, cfg.StrictJSON)
		require.EqualValues(t, 512, cfg.MaxBodySize)
	})
}

func TestConfigValid(t *testing.T) {
	good := ranger.NewConfig()

	tcs := []struct {
		name string
		fn   func(*ranger.Config)
	}{
		{"Bad-Env", func(c *ranger.Config) { c.Env = "NOWHERE" }},
		{"No-Base-URL", func(c *ranger.Config) { c.BaseURL = nil }},
		{"No-Body", func(c *ranger.Config) { c.MaxBodySize = 0 }},
		{"No-Rate", func(c *ranger.Config) { c.RateLimit = 0 }},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg := good
			tc.fn(&cfg)
			require.ErrorIs(t, cfg.Valid(), hello.ErrBadConfig)
		})
	}
}

func TestNew(t *testing.T) {
	// Arrange
	cfg := ranger.NewConfig()
	cfg.Env = hello.Testing

	// Act
	rng, err := ranger.New(ranger.WithConfig(cfg), ranger.WithLogger(logger.NewNoop()))

	// Assert
	require.Nil(t, err)
	require.Contains(t, rng.Paths(), "/request-param-v1")
	require.Contains(t, rng.Paths(), "/request-body-json-v5")

	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "https://example.com/request-body-json-v5", strings.NewReader(`{"username":"hello","age":20}`))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("X-Forwarded-Proto", "https")

	// Act
	rng.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"username":"hello","age":20}`, w.Body.String())
	require.NotZero(t, w.Header().Get("X-Request-Id"))

	// Arrange
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "https://example.com/nowhere", nil)

	// Act
	rng.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewBadConfig(t *testing.T) {
	// Arrange
	cfg := ranger.NewConfig()
	cfg.MaxBodySize = -1

	// Act
	_, err := ranger.New(ranger.WithConfig(cfg), ranger.WithLogger(logger.NewNoop()))

	// Assert
	require.ErrorIs(t, err, hello.ErrBadConfig)

	// Act
	_, err = ranger.New(ranger.WithLogger(nil))

	// Assert
	require.ErrorIs(t, err, hello.ErrBadConfig)
}

func TestGuide(t *testing.T) {
	// Arrange
	cfg := ranger.NewConfig()
	cfg.Port = ":0"

	ctx, cancel := context.WithCancel(context.Background())
	rng, err := ranger.New(ranger.WithConfig(cfg), ranger.WithContext(ctx), ranger.WithLogger(logger.NewNoop()))
	require.Nil(t, err)

	done := make(chan error, 1)

	// Act
	go func() { done <- rng.Guide() }()
	cancel()

	// Assert
	select {
	case err := <-done:
		require.Nil(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Guide did not stop")
	}
}
