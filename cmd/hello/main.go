// Command hello runs the hello web server.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/xy-planning-network/hello"
	"github.com/xy-planning-network/hello/logger"
	"github.com/xy-planning-network/hello/ranger"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "hello",
		Usage:    "decode request parameters and JSON bodies into a username and an age",
		Flags:    configFlags,
		Commands: []*cli.Command{ServeCommand, RoutesCommand},
	}
}

var configFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "env",
		Usage:   "environment to run in: DEVELOPMENT, TESTING, STAGING or PRODUCTION",
		EnvVars: []string{ranger.EnvironmentEnvVar},
	},
	&cli.StringFlag{
		Name:    "port",
		Usage:   "port to listen on",
		EnvVars: []string{ranger.PortEnvVar},
	},
	&cli.StringFlag{
		Name:    "log-level",
		Usage:   "level to begin logging at: DEBUG, INFO, WARN, ERROR or FATAL",
		EnvVars: []string{ranger.LogLevelEnvVar},
	},
	&cli.BoolFlag{
		Name:    "strict-json",
		Usage:   "reject JSON bodies holding unknown fields",
		EnvVars: []string{ranger.StrictJSONEnvVar},
	},
}

var ServeCommand = &cli.Command{
	Name:  "serve",
	Usage: "Start the web server until receiving a signal to stop",
	Action: func(c *cli.Context) error {
		cfg, err := newConfig(c)
		if err != nil {
			return err
		}

		rng, err := ranger.New(ranger.WithConfig(cfg), ranger.WithContext(c.Context))
		if err != nil {
			return err
		}

		return rng.Guide()
	},
}

var RoutesCommand = &cli.Command{
	Name:  "routes",
	Usage: "List the paths the web server handles",
	Action: func(c *cli.Context) error {
		cfg, err := newConfig(c)
		if err != nil {
			return err
		}

		rng, err := ranger.New(ranger.WithConfig(cfg), ranger.WithLogger(logger.NewNoop()))
		if err != nil {
			return err
		}

		for _, p := range rng.Paths() {
			fmt.Fprintln(c.App.Writer, p)
		}

		return nil
	},
}

// newConfig reads the Config from environment variables, overridden by the flags set.
func newConfig(c *cli.Context) (ranger.Config, error) {
	cfg := ranger.NewConfig()

	if c.IsSet("env") {
		cfg.Env = hello.Environment(strings.ToUpper(c.String("env")))
	}

	if c.IsSet("port") {
		cfg.Port = c.String("port")
		if !strings.HasPrefix(cfg.Port, ":") {
			cfg.Port = ":" + cfg.Port
		}
	}

	if c.IsSet("log-level") {
		cfg.LogLevel = logger.NewLogLevel(strings.ToUpper(c.String("log-level")))
		if cfg.LogLevel == logger.LogLevelUnk {
			return cfg, fmt.Errorf("%w: unknown log level %q", hello.ErrBadConfig, c.String("log-level"))
		}
	}

	if c.IsSet("strict-json") {
		cfg.StrictJSON = c.Bool("strict-json")
	}

	return cfg, cfg.Valid()
}
