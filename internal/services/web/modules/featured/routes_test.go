package featured

import (
	"bufio"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/risemars/site/internal/services/web/content"
	"github.com/risemars/site/internal/services/web/platform/htmltest"
	"github.com/risemars/site/internal/services/web/platform/observability"
	"github.com/risemars/site/internal/services/web/platform/pagerender"
	"github.com/risemars/site/internal/services/web/platform/publichandler"
	"github.com/risemars/site/internal/services/web/rotation"
	"github.com/risemars/site/internal/services/web/routepath"
	webtemplates "github.com/risemars/site/internal/services/web/templates"
)

type fakeClock struct {
	ticks   chan time.Time
	stopped chan struct{}
	once    sync.Once
}

func newFakeClock() *fakeClock {
	return &fakeClock{ticks: make(chan time.Time), stopped: make(chan struct{})}
}

func (c *fakeClock) NewTicker(time.Duration) rotation.Ticker { return c }

func (c *fakeClock) C() <-chan time.Time { return c.ticks }

func (c *fakeClock) Stop() { c.once.Do(func() { close(c.stopped) }) }

func testBase() publichandler.Base {
	registry := content.Default()
	return publichandler.NewBase(pagerender.Shell{Chrome: webtemplates.Chrome{
		AppName:    "Rise Mars Digital Solutions",
		Services:   registry.ListServices(),
		Industries: registry.ListIndustries(),
		Year:       2026,
	}})
}

func mountHandler(t *testing.T, opts ...Option) http.Handler {
	t.Helper()
	mount, err := New(testBase(), content.Default(), opts...).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.FeaturedPrefix {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
	return mount.Handler
}

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(newService(nil), publichandler.Base{}, rotation.Rotator{}, nil))
}

func TestCardFragmentNormalizesIndex(t *testing.T) {
	t.Parallel()

	handler := mountHandler(t)
	size := len(content.Default().ListServices())

	tests := []struct {
		name  string
		index string
		want  int
	}{
		{name: "in range", index: "3", want: 3},
		{name: "wraps forward", index: "12", want: 12 % size},
		{name: "wraps backward", index: "-1", want: size - 1},
		{name: "garbage", index: "x", want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, routepath.Featured+"?index="+tc.index, nil)
			req.Header.Set("HX-Request", "true")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d", rr.Code)
			}
			if strings.Contains(rr.Body.String(), "<html") {
				t.Fatal("card fragment rendered the document shell")
			}
			card := htmltest.Find(htmltest.Parse(t, rr.Body.String()), htmltest.Class("featured-card"))
			got, _ := htmltest.Attr(card, "data-featured-index")
			if got != strconv.Itoa(tc.want) {
				t.Fatalf("index = %q, want %d", got, tc.want)
			}
		})
	}
}

func TestCardWithoutHTMXRedirectsHome(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.FeaturedAt(2), nil))
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != routepath.HomeWithFeatured(2) {
		t.Fatalf("Location = %q", got)
	}
}

func TestUnknownFeaturedPathNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/featured/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestStreamRotatesWrapsAndReleasesTicker(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	srv := httptest.NewServer(mountHandler(t, WithClock(clock), WithMetrics(metrics)))
	defer srv.Close()

	size := len(content.Default().ListServices())
	resp, err := http.Get(srv.URL + routepath.FeaturedStreamFrom(size-1))
	if err != nil {
		t.Fatalf("GET stream: %v", err)
	}
	if got := resp.Header.Get("Content-Type"); got != "text/event-stream" {
		t.Fatalf("Content-Type = %q", got)
	}
	reader := bufio.NewReader(resp.Body)
	if first := readEvent(t, reader); first[0] != "retry: 10000" {
		t.Fatalf("preamble = %v", first)
	}

	for _, want := range []string{"0", "1"} {
		clock.ticks <- time.Now()
		lines := readEvent(t, reader)
		if lines[0] != "event: featured" || lines[1] != "id: "+want {
			t.Fatalf("event header = %v, want id %s", lines[:2], want)
		}
		for _, line := range lines[2:] {
			if !strings.HasPrefix(line, "data: ") {
				t.Fatalf("unframed line %q", line)
			}
		}
		if !strings.Contains(strings.Join(lines, "\n"), `data-featured-index="`+want+`"`) {
			t.Fatalf("event %s does not carry the card", want)
		}
	}
	if got := testutil.ToFloat64(metrics.FeaturedStreams); got != 1 {
		t.Fatalf("open streams = %v, want 1", got)
	}

	resp.Body.Close()
	select {
	case <-clock.stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("ticker was not stopped after the client disconnected")
	}
}

func TestHealthy(t *testing.T) {
	t.Parallel()

	if !New(testBase(), nil).Healthy() {
		t.Fatal("default module reported unhealthy")
	}
	if New(testBase(), nil, WithInterval(0)).Healthy() {
		t.Fatal("module without an interval reported healthy")
	}
}

func TestWriteEventFramesEveryLine(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	if err := writeEvent(&b, "featured", "4", "<a>\n<b>\r\n</b>"); err != nil {
		t.Fatalf("writeEvent() error = %v", err)
	}
	want := "event: featured\nid: 4\ndata: <a>\ndata: <b>\ndata: </b>\n\n"
	if b.String() != want {
		t.Fatalf("writeEvent() = %q, want %q", b.String(), want)
	}
}

// readEvent reads lines up to the next blank line.
func readEvent(t *testing.T, r *bufio.Reader) []string {
	t.Helper()
	var lines []string
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			t.Fatalf("read stream: %v", err)
		}
		line = strings.TrimRight(line, "\n")
		if line == "" {
			if len(lines) == 0 {
				continue
			}
			return lines
		}
		lines = append(lines, line)
	}
}
