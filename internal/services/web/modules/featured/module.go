// Package featured serves the home page featured-service card and the event
// stream that rotates it.
package featured

import (
	"net/http"
	"time"

	"github.com/risemars/site/internal/services/web/content"
	"github.com/risemars/site/internal/services/web/module"
	"github.com/risemars/site/internal/services/web/platform/observability"
	"github.com/risemars/site/internal/services/web/platform/publichandler"
	"github.com/risemars/site/internal/services/web/rotation"
	"github.com/risemars/site/internal/services/web/routepath"
)

// DefaultInterval is the time each featured service stays on screen.
const DefaultInterval = 5 * time.Second

// Option configures a featured module.
type Option func(*Module)

// WithInterval sets the rotation interval.
func WithInterval(d time.Duration) Option {
	return func(m *Module) { m.interval = d }
}

// WithClock replaces the ticker source.
func WithClock(c rotation.Clock) Option {
	return func(m *Module) { m.clock = c }
}

// WithMetrics tracks open streams.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(m *Module) { m.metrics = metrics }
}

// Module provides the featured card routes.
type Module struct {
	base     publichandler.Base
	registry *content.Registry
	interval time.Duration
	clock    rotation.Clock
	metrics  *observability.Metrics
}

// New returns the featured module.
func New(base publichandler.Base, registry *content.Registry, opts ...Option) Module {
	if registry == nil {
		registry = content.Default()
	}
	m := Module{base: base, registry: registry, interval: DefaultInterval, clock: rotation.SystemClock}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "featured" }

// Healthy reports whether there is anything to rotate.
func (m Module) Healthy() bool {
	return m.registry != nil && len(m.registry.ListServices()) > 0 && m.interval > 0
}

// Mount wires featured route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.registry), m.base, rotation.Rotator{Interval: m.interval, Clock: m.clock}, m.metrics)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.FeaturedPrefix, Handler: mux}, nil
}
