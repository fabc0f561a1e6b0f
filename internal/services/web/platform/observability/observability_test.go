package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func staticLabel(view string) func(*http.Request) string {
	return func(*http.Request) string { return view }
}

func TestRequestLoggerLogsMethodPathAndView(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	h := RequestLogger(zap.New(core), staticLabel("services"))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}

	entries := logs.FilterMessage("http request").All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	want := map[string]any{
		"method":     "GET",
		"path":       "/services",
		"view":       "services",
		"status":     int64(204),
		"request_id": "req-123",
	}
	for key, value := range want {
		if fields[key] != value {
			t.Fatalf("field %s = %v, want %v", key, fields[key], value)
		}
	}
}

func TestRequestLoggerCapturesImplicitStatusOKAndBytes(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	h := RequestLogger(zap.New(core), nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/up", nil))

	entry := logs.All()[0]
	fields := entry.ContextMap()
	if fields["status"] != int64(200) {
		t.Fatalf("status = %v, want 200", fields["status"])
	}
	if fields["bytes"] != int64(2) {
		t.Fatalf("bytes = %v, want 2", fields["bytes"])
	}
	if fields["view"] != "unknown" {
		t.Fatalf("view = %v, want unknown", fields["view"])
	}
	if _, ok := fields["latency"].(time.Duration); !ok {
		t.Fatalf("latency = %T, want time.Duration", fields["latency"])
	}
}

func TestRequestLoggerUsesErrorLevelForServerErrors(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	h := RequestLogger(zap.New(core), nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got := logs.All()[0].Level; got != zapcore.ErrorLevel {
		t.Fatalf("level = %v, want error", got)
	}
}

func TestMetricsInstrumentAndExpose(t *testing.T) {
	t.Parallel()

	metrics := NewMetrics(prometheus.NewRegistry())
	h := metrics.Instrument(staticLabel("home"))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "hi")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	metrics.RecordContact(OutcomeAccepted)
	release := metrics.StreamOpened()
	release()

	rr := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rr.Body.String()
	for _, marker := range []string{
		`risemars_http_requests_total{method="GET",status="200",view="home"} 1`,
		`risemars_contact_submissions_total{outcome="accepted"} 1`,
		`risemars_featured_streams_active 0`,
		`risemars_http_request_duration_seconds_count{method="GET",view="home"} 1`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("metrics output missing %q:\n%s", marker, body)
		}
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	t.Parallel()

	var metrics *Metrics
	metrics.RecordContact(OutcomeInvalid)
	metrics.StreamOpened()()

	h := metrics.Instrument(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}

	rr = httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
