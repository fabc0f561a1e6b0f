// Package web parses site command flags and launches the site server.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/risemars/site/internal/platform/cmd"
	"github.com/risemars/site/internal/platform/logging"
	"github.com/risemars/site/internal/services/web"
	"go.uber.org/zap"
)

// Config holds the web command configuration. Environment variables carry
// the RISEMARS_ prefix.
type Config struct {
	HTTPAddr            string        `env:"WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	AppName             string        `env:"WEB_APP_NAME"`
	ContactDelay        time.Duration `env:"WEB_CONTACT_DELAY" envDefault:"1500ms"`
	ContactRate         float64       `env:"WEB_CONTACT_RATE" envDefault:"0"`
	ContactBurst        int           `env:"WEB_CONTACT_BURST" envDefault:"5"`
	FeaturedInterval    time.Duration `env:"WEB_FEATURED_INTERVAL" envDefault:"5s"`
	TrustForwardedProto bool          `env:"WEB_TRUST_FORWARDED_PROTO"`
	TrustForwardedFor   bool          `env:"WEB_TRUST_FORWARDED_FOR"`
	MetricsEnabled      bool          `env:"WEB_METRICS_ENABLED" envDefault:"true"`

	Logging logging.Config
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "The HTTP listen address")
	fs.StringVar(&cfg.AppName, "app-name", cfg.AppName, "The brand shown in titles and navigation")
	fs.DurationVar(&cfg.ContactDelay, "contact-delay", cfg.ContactDelay, "The simulated contact submission delay")
	fs.DurationVar(&cfg.FeaturedInterval, "featured-interval", cfg.FeaturedInterval, "The featured service rotation interval")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "The minimum log level")

	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the site server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("service", entrypoint.ServiceWeb))

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, err := web.NewServer(serverConfig(cfg, logger))
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func serverConfig(cfg Config, logger *zap.Logger) web.Config {
	return web.Config{
		HTTPAddr:            cfg.HTTPAddr,
		AppName:             cfg.AppName,
		ContactDelay:        cfg.ContactDelay,
		ContactRate:         cfg.ContactRate,
		ContactBurst:        cfg.ContactBurst,
		FeaturedInterval:    cfg.FeaturedInterval,
		TrustForwardedProto: cfg.TrustForwardedProto,
		TrustForwardedFor:   cfg.TrustForwardedFor,
		MetricsEnabled:      cfg.MetricsEnabled,
		Logger:              logger,
	}
}
