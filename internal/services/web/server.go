package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/risemars/site/internal/platform/branding"
	"github.com/risemars/site/internal/platform/timeouts"
	"github.com/risemars/site/internal/services/shared/route"
	"github.com/risemars/site/internal/services/web/app"
	"github.com/risemars/site/internal/services/web/content"
	module "github.com/risemars/site/internal/services/web/module"
	"github.com/risemars/site/internal/services/web/modules"
	"github.com/risemars/site/internal/services/web/platform/httpx"
	"github.com/risemars/site/internal/services/web/platform/observability"
	"github.com/risemars/site/internal/services/web/platform/pagerender"
	"github.com/risemars/site/internal/services/web/platform/publichandler"
	"github.com/risemars/site/internal/services/web/platform/requestmeta"
	"github.com/risemars/site/internal/services/web/routepath"
	"github.com/risemars/site/internal/services/web/static"
	webtemplates "github.com/risemars/site/internal/services/web/templates"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const tracerName = "github.com/risemars/site/internal/services/web"

// Config defines the inputs for the site server.
type Config struct {
	HTTPAddr string
	AppName  string

	ContactDelay     time.Duration
	ContactRate      float64
	ContactBurst     int
	FeaturedInterval time.Duration

	// TrustForwardedProto and TrustForwardedFor enable X-Forwarded-* headers
	// when the site runs behind a reverse proxy.
	TrustForwardedProto bool
	TrustForwardedFor   bool

	MetricsEnabled bool
	Logger         *zap.Logger

	// Registry overrides the embedded catalog; nil uses content.Default.
	Registry *content.Registry
	// Now overrides the footer clock.
	Now func() time.Time
}

// Server hosts the site HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

type healthResponse struct {
	Status    string   `json:"status"`
	Unhealthy []string `json:"unhealthy,omitempty"`
}

// NewHandler assembles the root handler: every site module, static assets,
// the health probe, optional metrics and the request middleware chain.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := cfg.Registry
	if registry == nil {
		registry = content.Default()
	}
	appName := strings.TrimSpace(cfg.AppName)
	if appName == "" {
		appName = branding.AppName
	}

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics = observability.NewMetrics(reg)
	}

	shell := pagerender.Shell{
		Chrome: webtemplates.Chrome{
			AppName:    appName,
			Services:   registry.ListServices(),
			Industries: registry.ListIndustries(),
		},
		Now: cfg.Now,
	}
	base := publichandler.NewBase(shell,
		publichandler.WithProxyPolicy(requestmeta.ProxyPolicy{
			TrustForwardedProto: cfg.TrustForwardedProto,
			TrustForwardedFor:   cfg.TrustForwardedFor,
		}),
		publichandler.WithLogger(logger),
	)

	mods := modules.Default(modules.Dependencies{
		Base:             base,
		Registry:         registry,
		Metrics:          metrics,
		ContactDelay:     cfg.ContactDelay,
		ContactRate:      rate.Limit(cfg.ContactRate),
		ContactBurst:     cfg.ContactBurst,
		FeaturedInterval: cfg.FeaturedInterval,
	})

	extra := map[string]http.Handler{
		routepath.StaticPrefix: static.Handler(routepath.StaticPrefix),
		routepath.Health:       healthHandler(mods),
	}
	if metrics != nil {
		extra[routepath.Metrics] = metrics.Handler()
	}

	root, err := app.Compose(app.ComposeInput{Modules: mods, Extra: extra})
	if err != nil {
		return nil, fmt.Errorf("compose web modules: %w", err)
	}

	return httpx.Chain(root,
		httpx.RequestID(),
		httpx.Trace(otel.Tracer(tracerName), otel.GetTextMapPropagator(), viewLabel),
		metrics.Instrument(viewLabel),
		observability.RequestLogger(logger, viewLabel),
		httpx.RecoverPanic(logger),
		route.CanonicalPaths,
	), nil
}

func viewLabel(r *http.Request) string {
	return string(routepath.Resolve(r.URL.Path).View)
}

// healthHandler reports "ok" while every module that can report health is
// healthy, and 503 "degraded" naming the failing modules otherwise.
func healthHandler(mods []module.Module) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			httpx.MethodNotAllowed("GET, HEAD")(w, r)
			return
		}
		resp := healthResponse{Status: "ok"}
		for _, m := range mods {
			reporter, ok := m.(module.HealthReporter)
			if ok && !reporter.Healthy() {
				resp.Unhealthy = append(resp.Unhealthy, m.ID())
			}
		}
		status := http.StatusOK
		if len(resp.Unhealthy) > 0 {
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
		_ = httpx.WriteJSON(w, status, resp)
	})
}

// NewServer builds a configured site server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.Logger = logger

	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}

	// Long-lived event streams observe the base context, which is canceled
	// as soon as shutdown begins.
	baseCtx, cancelBase := context.WithCancel(context.Background())
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
		IdleTimeout:       timeouts.Idle,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
		ErrorLog:          zap.NewStdLog(logger.Named("http")),
	}
	httpServer.RegisterOnShutdown(cancelBase)

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		logger:     logger,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until the context ends.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	if listener == nil {
		return errors.New("listener is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info("web listening", zap.String("addr", listener.Addr().String()))
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		s.logger.Info("web stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
