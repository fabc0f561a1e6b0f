package web

import (
	"flag"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("http_addr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.ContactDelay != 1500*time.Millisecond {
		t.Fatalf("contact_delay = %s, want 1.5s", cfg.ContactDelay)
	}
	if cfg.ContactRate != 0 || cfg.ContactBurst != 5 {
		t.Fatalf("contact limit = %v/%d, want 0/5", cfg.ContactRate, cfg.ContactBurst)
	}
	if cfg.FeaturedInterval != 5*time.Second {
		t.Fatalf("featured_interval = %s, want 5s", cfg.FeaturedInterval)
	}
	if !cfg.MetricsEnabled {
		t.Fatal("metrics should be enabled by default")
	}
	if cfg.TrustForwardedProto || cfg.TrustForwardedFor {
		t.Fatal("forwarded headers should be untrusted by default")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Fatalf("logging = %+v, want info/json", cfg.Logging)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("RISEMARS_WEB_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("RISEMARS_WEB_CONTACT_BURST", "2")
	t.Setenv("RISEMARS_WEB_TRUST_FORWARDED_PROTO", "true")
	t.Setenv("RISEMARS_WEB_METRICS_ENABLED", "false")
	t.Setenv("RISEMARS_LOG_FORMAT", "console")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-app-name", "Rise Mars Staging",
		"-contact-delay", "10ms",
		"-featured-interval", "2s",
		"-log-level", "debug",
	})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" {
		t.Fatalf("http_addr = %q, want %q", cfg.HTTPAddr, "0.0.0.0:9000")
	}
	if cfg.AppName != "Rise Mars Staging" {
		t.Fatalf("app_name = %q, want %q", cfg.AppName, "Rise Mars Staging")
	}
	if cfg.ContactDelay != 10*time.Millisecond {
		t.Fatalf("contact_delay = %s, want 10ms", cfg.ContactDelay)
	}
	if cfg.ContactBurst != 2 {
		t.Fatalf("contact_burst = %d, want 2", cfg.ContactBurst)
	}
	if cfg.FeaturedInterval != 2*time.Second {
		t.Fatalf("featured_interval = %s, want 2s", cfg.FeaturedInterval)
	}
	if !cfg.TrustForwardedProto {
		t.Fatal("trust_forwarded_proto = false, want true")
	}
	if cfg.MetricsEnabled {
		t.Fatal("metrics_enabled = true, want false")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Fatalf("logging = %+v, want debug/console", cfg.Logging)
	}
}

func TestParseConfigRejectsInvalidLogLevel(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-log-level", "loud"}); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestParseConfigRejectsInvalidEnv(t *testing.T) {
	t.Setenv("RISEMARS_WEB_CONTACT_DELAY", "soon")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestServerConfigCopiesFields(t *testing.T) {
	t.Parallel()

	logger := zap.NewNop()
	cfg := Config{
		HTTPAddr:          "localhost:1",
		AppName:           "Rise Mars",
		ContactDelay:      time.Second,
		ContactRate:       1,
		ContactBurst:      3,
		FeaturedInterval:  time.Minute,
		TrustForwardedFor: true,
		MetricsEnabled:    true,
	}
	got := serverConfig(cfg, logger)
	if got.HTTPAddr != cfg.HTTPAddr || got.AppName != cfg.AppName {
		t.Fatalf("server config = %+v", got)
	}
	if got.ContactDelay != time.Second || got.ContactRate != 1 || got.ContactBurst != 3 {
		t.Fatalf("contact settings = %s/%v/%d", got.ContactDelay, got.ContactRate, got.ContactBurst)
	}
	if got.FeaturedInterval != time.Minute || !got.TrustForwardedFor || got.TrustForwardedProto || !got.MetricsEnabled {
		t.Fatalf("server config = %+v", got)
	}
	if got.Logger != logger {
		t.Fatal("logger not forwarded")
	}
}
