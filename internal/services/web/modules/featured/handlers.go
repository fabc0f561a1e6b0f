package featured

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/risemars/site/internal/services/web/platform/errors"
	"github.com/risemars/site/internal/services/web/platform/httpx"
	"github.com/risemars/site/internal/services/web/platform/observability"
	"github.com/risemars/site/internal/services/web/platform/publichandler"
	"github.com/risemars/site/internal/services/web/rotation"
	"github.com/risemars/site/internal/services/web/routepath"
	webtemplates "github.com/risemars/site/internal/services/web/templates"
	"go.uber.org/zap"
)

const (
	eventName = "featured"
	// retryMillis tells EventSource how long to wait before reconnecting.
	retryMillis = 10000
)

type handlers struct {
	publichandler.Base
	service service
	rotator rotation.Rotator
	metrics *observability.Metrics
}

func newHandlers(s service, base publichandler.Base, rotator rotation.Rotator, metrics *observability.Metrics) handlers {
	return handlers{Base: base, service: s, rotator: rotator, metrics: metrics}
}

// handleCard renders one featured card. Requests without htmx are sent to
// the home page pinned at the same position.
func (h handlers) handleCard(w http.ResponseWriter, r *http.Request) {
	view := h.service.view(parseIndex(r, routepath.FeaturedIndexParam))
	if !httpx.IsHTMXRequest(r) {
		h.Redirect(w, r, routepath.HomeWithFeatured(view.Index))
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	var buf bytes.Buffer
	if err := webtemplates.FeaturedCard(view, loc).Render(r.Context(), &buf); err != nil {
		h.WriteError(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	if err := httpx.WriteHTML(w, http.StatusOK, buf.String()); err != nil {
		h.Logger().Debug("featured card write failed", zap.Error(err))
	}
}

// handleStream emits the next featured card every rotation interval until
// the client goes away or the server shuts down.
func (h handlers) handleStream(w http.ResponseWriter, r *http.Request) {
	size := h.service.size()
	if size == 0 || h.rotator.Interval <= 0 {
		h.WriteError(w, r, apperrors.E(apperrors.KindUnavailable, "featured rotation has nothing to rotate"))
		return
	}
	rc := http.NewResponseController(w)
	// The server write timeout would otherwise cut the stream.
	if err := rc.SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		h.Logger().Debug("featured stream write deadline", zap.Error(err))
	}
	header := w.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprintf(w, "retry: %d\n\n", retryMillis); err != nil {
		return
	}
	if err := rc.Flush(); err != nil {
		h.Logger().Warn("featured stream cannot flush", zap.Error(err))
		return
	}

	defer h.metrics.StreamOpened()()

	loc, _ := h.PageLocalizer(w, r)
	rotator := h.rotator
	rotator.Size = size
	start := parseIndex(r, routepath.FeaturedFromParam)
	err := rotator.Run(r.Context(), start, func(index int) error {
		var buf bytes.Buffer
		if err := webtemplates.FeaturedCard(h.service.view(index), loc).Render(r.Context(), &buf); err != nil {
			return err
		}
		if err := writeEvent(w, eventName, strconv.Itoa(index), buf.String()); err != nil {
			return err
		}
		return rc.Flush()
	})
	if err != nil {
		h.Logger().Debug("featured stream ended",
			zap.String("request_id", httpx.RequestIDFrom(r)),
			zap.Error(err),
		)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}

// writeEvent writes one server-sent event. Every line of data gets its own
// data field so multi-line markup survives framing.
func writeEvent(w io.Writer, event, id, data string) error {
	var b strings.Builder
	b.WriteString("event: ")
	b.WriteString(event)
	b.WriteString("\nid: ")
	b.WriteString(id)
	b.WriteByte('\n')
	for line := range strings.SplitSeq(data, "\n") {
		b.WriteString("data: ")
		b.WriteString(strings.TrimSuffix(line, "\r"))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func parseIndex(r *http.Request, param string) int {
	index, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(param)))
	if err != nil {
		return 0
	}
	return index
}
