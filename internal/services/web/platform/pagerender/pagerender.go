// Package pagerender centralizes page rendering for full-document and HTMX flows.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/risemars/site/internal/services/web/platform/httpx"
	webi18n "github.com/risemars/site/internal/services/web/platform/i18n"
	"github.com/risemars/site/internal/services/web/routepath"
	webtemplates "github.com/risemars/site/internal/services/web/templates"
)

const defaultDescriptionKey = "core.footer.about"

// Shell carries the site-wide chrome every page renders inside.
type Shell struct {
	Chrome webtemplates.Chrome
	// Now supplies the footer year when Chrome.Year is zero.
	Now func() time.Time
}

// Page describes one page response.
type Page struct {
	// Title is the page-specific title; empty renders the app name alone.
	Title      string
	StatusCode int
	View       routepath.View
	Slug       string
	Fragment   templ.Component
	// Loc and Lang are resolved from the request when Loc is nil.
	Loc  webi18n.Localizer
	Lang string
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// Write renders page into the full layout, or into the main fragment with an
// out-of-band navigation refresh for HTMX requests. Output is buffered so a
// render failure never leaves a partial response behind.
func Write(w http.ResponseWriter, r *http.Request, shell Shell, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	loc, lang := page.Loc, page.Lang
	if loc == nil {
		loc, lang = webi18n.ResolveLocalizer(w, r)
	}

	chrome := shell.Chrome
	if chrome.Year == 0 {
		chrome.Year = shell.now().Year()
	}
	opts := webtemplates.LayoutOptions{
		Title:       Title(loc, chrome.AppName, page.Title),
		Description: webtemplates.T(loc, defaultDescriptionKey),
		Lang:        lang,
		Loc:         loc,
		View:        page.View,
		Slug:        page.Slug,
		Chrome:      chrome,
	}

	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)
	var buf bytes.Buffer
	component := webtemplates.Layout(opts)
	if httpx.IsHTMXRequest(r) {
		component = webtemplates.MainFragment(opts)
	}
	if err := component.Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("Vary", "HX-Request")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// Title composes the document title: "{page} | {app}", or the app name alone.
func Title(loc webi18n.Localizer, appName, pageTitle string) string {
	pageTitle = strings.TrimSpace(pageTitle)
	if pageTitle == "" {
		return appName
	}
	if strings.TrimSpace(appName) == "" {
		return pageTitle
	}
	return webtemplates.T(loc, "core.title.detail", pageTitle, appName)
}

func (s Shell) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
