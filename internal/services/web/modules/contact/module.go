// Package contact serves the contact page and accepts contact form posts.
package contact

import (
	"net/http"
	"time"

	"github.com/risemars/site/internal/services/web/module"
	"github.com/risemars/site/internal/services/web/platform/observability"
	"github.com/risemars/site/internal/services/web/platform/publichandler"
	"github.com/risemars/site/internal/services/web/routepath"
	"golang.org/x/time/rate"
)

const (
	// DefaultDelay is the simulated delivery time.
	DefaultDelay = 1500 * time.Millisecond
	// DefaultRate leaves limiting off so every valid form is accepted.
	// DefaultBurst applies once a positive rate is configured.
	DefaultRate  = rate.Limit(0)
	DefaultBurst = 5
)

// Option configures a contact module.
type Option func(*Module)

// WithSender replaces the simulated sender.
func WithSender(s Sender) Option {
	return func(m *Module) { m.sender = s }
}

// WithDelay sets the simulated sender delay.
func WithDelay(d time.Duration) Option {
	return func(m *Module) { m.delay = d }
}

// WithRateLimit sets the per-client submission rate. A non-positive limit
// disables limiting.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(m *Module) {
		m.limit = limit
		m.burst = burst
	}
}

// WithMetrics records submission outcomes.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(m *Module) { m.metrics = metrics }
}

// Module provides the contact routes.
type Module struct {
	base    publichandler.Base
	sender  Sender
	delay   time.Duration
	limit   rate.Limit
	burst   int
	metrics *observability.Metrics
}

// New returns a contact module with the simulated sender and default limits.
func New(base publichandler.Base, opts ...Option) Module {
	m := Module{base: base, delay: DefaultDelay, limit: DefaultRate, burst: DefaultBurst}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "contact" }

// Mount wires contact route handlers.
func (m Module) Mount() (module.Mount, error) {
	sender := m.sender
	if sender == nil {
		sender = SimulatedSender{Delay: m.delay, Logger: m.base.Logger()}
	}
	mux := http.NewServeMux()
	svc := newService(sender, newLimiter(m.limit, m.burst))
	registerRoutes(mux, newHandlers(svc, m.base, m.metrics))
	return module.Mount{Prefix: routepath.ContactPrefix, Handler: mux}, nil
}
