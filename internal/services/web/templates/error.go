package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/risemars/site/internal/services/web/routepath"
)

const (
	appErrorPageTitleNotFoundKey  = "error.page_title_not_found"
	appErrorPageTitleServerErrKey = "error.page_title_server_error"
	appErrorCodeNotFoundKey       = "error.code_not_found"
	appErrorCodeServerErrKey      = "error.code_server_error"
	appErrorHeadingNotFoundKey    = "error.title_not_found"
	appErrorHeadingServerErrKey   = "error.title_server_error"
	appErrorMessageNotFoundKey    = "error.message_not_found"
	appErrorMessageServerErrKey   = "error.message_server_error"
	appErrorBackHomeKey           = "error.action_back_home"
	appErrorContactSupportKey     = "error.action_contact_support"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorPageTitleNotFoundKey)
	}
	return T(loc, appErrorPageTitleServerErrKey)
}

// AppErrorState renders the not-found or server-error body with links back
// to the home and contact pages.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.open("section", "id", "app-error-state", "class", "error-state")
		m.open("div", "class", "container error-inner")
		m.elem("p", appErrorCode(statusCode, loc), "class", "error-code")
		m.elem("h1", appErrorHeading(statusCode, loc))
		m.elem("p", appErrorMessage(statusCode, loc), "class", "error-message")
		m.open("div", "class", "error-actions")
		m.link(routepath.Root, "button button-primary", func() {
			writeIcon(m, "arrow-left", "icon icon-sm")
			m.text(T(loc, appErrorBackHomeKey))
		})
		m.link(routepath.Contact, "button button-outline", func() { m.text(T(loc, appErrorContactSupportKey)) })
		m.close("div")
		m.close("div")
		m.close("section")
		return m.err
	})
}

func appErrorCode(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorCodeNotFoundKey)
	}
	return T(loc, appErrorCodeServerErrKey)
}

func appErrorHeading(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorHeadingNotFoundKey)
	}
	return T(loc, appErrorHeadingServerErrKey)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorMessageNotFoundKey)
	}
	return T(loc, appErrorMessageServerErrKey)
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
