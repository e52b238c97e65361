package ranger

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/xy-planning-network/hello"
	"github.com/xy-planning-network/hello/http/req"
	"github.com/xy-planning-network/hello/logger"
)

const (
	// Base URL defaults
	BaseURLEnvVar = "BASE_URL"

	// Environment defaults
	EnvironmentEnvVar = "ENVIRONMENT"

	// Log defaults
	LogLevelEnvVar  = "LOG_LEVEL"
	defaultLogLvl   = "INFO"
	SentryDsnEnvVar = "SENTRY_DSN"

	// Decoding defaults
	MaxBodySizeEnvVar = "MAX_BODY_SIZE"
	StrictJSONEnvVar  = "STRICT_JSON"

	// Rate limiting defaults
	RateLimitEnvVar      = "RATE_LIMIT"
	DefaultRateLimit     = 5
	RateLimitBurstEnvVar = "RATE_LIMIT_BURST"
	DefaultRateBurst     = 20

	// Web server defaults
	DefaultHost               = "localhost"
	HostEnvVar                = "HOST"
	DefaultPort               = ":8080"
	PortEnvVar                = "PORT"
	ServerReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	ServerIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	ServerWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second
)

// A Config holds every setting a Ranger is built from.
type Config struct {
	BaseURL   *url.URL
	Env       hello.Environment
	Host      string
	Port      string
	LogLevel  logger.LogLevel
	SentryDSN string

	MaxBodySize int64
	StrictJSON  bool

	RateLimit float64
	RateBurst int

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// NewConfig reads a Config from environment variables,
// using defaults for those not set or not valid.
//
// Environment variables set in a ".env" file in the working directory are loaded before NewConfig runs.
func NewConfig() Config {
	host := hello.EnvVarOrString(HostEnvVar, DefaultHost)
	port := normalizePort(hello.EnvVarOrString(PortEnvVar, DefaultPort))

	ll := logger.NewLogLevel(strings.ToUpper(hello.EnvVarOrString(LogLevelEnvVar, defaultLogLvl)))
	if ll == logger.LogLevelUnk {
		ll = logger.LogLevelInfo
	}

	return Config{
		BaseURL:      hello.EnvVarOrURL(BaseURLEnvVar, "http://"+host+port),
		Env:          hello.EnvVarOrEnv(EnvironmentEnvVar, hello.Development),
		Host:         host,
		Port:         port,
		LogLevel:     ll,
		SentryDSN:    os.Getenv(SentryDsnEnvVar),
		MaxBodySize:  int64(hello.EnvVarOrInt(MaxBodySizeEnvVar, req.DefaultMaxBodySize)),
		StrictJSON:   hello.EnvVarOrBool(StrictJSONEnvVar, false),
		RateLimit:    float64(hello.EnvVarOrInt(RateLimitEnvVar, DefaultRateLimit)),
		RateBurst:    hello.EnvVarOrInt(RateLimitBurstEnvVar, DefaultRateBurst),
		ReadTimeout:  hello.EnvVarOrDuration(ServerReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: hello.EnvVarOrDuration(ServerWriteTimeoutEnvVar, DefaultServerWriteTimeout),
		IdleTimeout:  hello.EnvVarOrDuration(ServerIdleTimeoutEnvVar, DefaultServerIdleTimeout),
	}
}

// Valid checks c can build a Ranger,
// returning an error wrapping hello.ErrBadConfig if not.
func (c Config) Valid() error {
	if err := c.Env.Valid(); err != nil {
		return fmt.Errorf("%w: %s", hello.ErrBadConfig, err)
	}

	if c.BaseURL == nil {
		return fmt.Errorf("%w: no base URL", hello.ErrBadConfig)
	}

	if c.MaxBodySize <= 0 {
		return fmt.Errorf("%w: max body size must be positive, got %d", hello.ErrBadConfig, c.MaxBodySize)
	}

	if c.RateLimit <= 0 || c.RateBurst <= 0 {
		return fmt.Errorf("%w: rate limit and burst must be positive", hello.ErrBadConfig)
	}

	return nil
}

// Addr is the address the web server listens on.
func (c Config) Addr() string { return c.Port }

// normalizePort prefixes port with a colon if it has none.
func normalizePort(port string) string {
	if port == "" || port[0] == ':' {
		return port
	}

	return ":" + port
}
