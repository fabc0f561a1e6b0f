// Package publichandler provides a shared base for web module handlers.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across modules.
package publichandler

import (
	"net/http"

	apperrors "github.com/risemars/site/internal/services/web/platform/errors"
	"github.com/risemars/site/internal/services/web/platform/httpx"
	webi18n "github.com/risemars/site/internal/services/web/platform/i18n"
	"github.com/risemars/site/internal/services/web/platform/pagerender"
	"github.com/risemars/site/internal/services/web/platform/requestmeta"
	"github.com/risemars/site/internal/services/web/platform/weberror"
	webtemplates "github.com/risemars/site/internal/services/web/templates"
	"go.uber.org/zap"
)

// Base provides shared error handling and page rendering for modules. Embed
// this in handler structs to get WritePage, WriteNotFound and WriteError.
type Base struct {
	shell  pagerender.Shell
	policy requestmeta.ProxyPolicy
	logger *zap.Logger
}

// Option configures a Base.
type Option func(*Base)

// WithProxyPolicy sets which forwarded headers are trusted.
func WithProxyPolicy(policy requestmeta.ProxyPolicy) Option {
	return func(b *Base) { b.policy = policy }
}

// WithLogger attaches the logger used for server-side failures.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Base) { b.logger = logger }
}

// NewBase builds a handler base around the site shell.
func NewBase(shell pagerender.Shell, opts ...Option) Base {
	b := Base{shell: shell}
	for _, o := range opts {
		o(&b)
	}
	if b.logger == nil {
		b.logger = zap.NewNop()
	}
	return b
}

// Shell returns the site chrome pages render inside.
func (b Base) Shell() pagerender.Shell {
	return b.shell
}

// ProxyPolicy returns the configured forwarded-header policy.
func (b Base) ProxyPolicy() requestmeta.ProxyPolicy {
	return b.policy
}

// Logger returns the handler logger, never nil.
func (b Base) Logger() *zap.Logger {
	if b.logger == nil {
		return zap.NewNop()
	}
	return b.logger
}

// PageLocalizer resolves a localizer and language tag from the request.
func (Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r)
}

// WritePage renders page in the site shell, falling back to the error page
// when rendering fails.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.Write(w, r, b.shell, page); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteNotFound renders the localized 404 page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.shell)
}

// WriteError renders a user-safe error response and logs server failures.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	if status := apperrors.HTTPStatus(err); status >= http.StatusInternalServerError {
		path := "-"
		if r != nil && r.URL != nil {
			path = r.URL.Path
		}
		b.Logger().Error("request failed",
			zap.String("path", path),
			zap.String("request_id", httpx.RequestIDFrom(r)),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	weberror.WriteModuleError(w, r, err, b.shell)
}

// Redirect sends an HTMX-aware redirect to location.
func (Base) Redirect(w http.ResponseWriter, r *http.Request, location string) {
	httpx.WriteRedirect(w, r, location)
}
