package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/risemars/site/internal/services/shared/i18nhttp"
	"github.com/risemars/site/internal/services/web/content"
	"github.com/risemars/site/internal/services/web/platform/htmltest"
	"github.com/risemars/site/internal/services/web/routepath"
)

var testLoc = i18nhttp.Printer(i18nhttp.Default())

func testChrome() Chrome {
	registry := content.Default()
	return Chrome{
		AppName:    "Rise Mars Digital Solutions",
		Services:   registry.ListServices(),
		Industries: registry.ListIndustries(),
		Year:       2026,
	}
}

func renderComponent(t *testing.T, component templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := component.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func renderWithChildren(t *testing.T, wrapper templ.Component, child templ.Component) string {
	t.Helper()
	var b strings.Builder
	ctx := templ.WithChildren(context.Background(), child)
	if err := wrapper.Render(ctx, &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func TestLayoutRendersChromeAroundChildren(t *testing.T) {
	t.Parallel()

	body := renderWithChildren(t, Layout(LayoutOptions{
		Title:       "About Us | Rise Mars Digital Solutions",
		Description: "Digital marketing agency",
		Lang:        "en-US",
		Loc:         testLoc,
		View:        routepath.ViewAbout,
		Chrome:      testChrome(),
	}), templ.Raw(`<p id="child">hello</p>`))

	if !strings.HasPrefix(body, "<!doctype html>") {
		t.Fatalf("expected doctype, got %q", body[:20])
	}
	doc := htmltest.Parse(t, body)

	if got := htmltest.Text(htmltest.Find(doc, htmltest.Tag("title"))); got != "About Us | Rise Mars Digital Solutions" {
		t.Fatalf("title = %q", got)
	}
	if lang, _ := htmltest.Attr(htmltest.Find(doc, htmltest.Tag("html")), "lang"); lang != "en-US" {
		t.Fatalf("lang = %q", lang)
	}
	bodyNode := htmltest.Find(doc, htmltest.Tag("body"))
	if boost, _ := htmltest.Attr(bodyNode, "hx-boost"); boost != "true" {
		t.Fatalf("hx-boost = %q", boost)
	}
	if target, _ := htmltest.Attr(bodyNode, "hx-target"); target != "#main" {
		t.Fatalf("hx-target = %q", target)
	}

	main := htmltest.Find(doc, htmltest.ID("main"))
	if main == nil || htmltest.Find(main, htmltest.ID("child")) == nil {
		t.Fatal("expected child inside main")
	}

	footer := htmltest.Find(doc, htmltest.Tag("footer"))
	var serviceLinks, industryLinks int
	for _, href := range htmltest.Hrefs(footer) {
		switch {
		case strings.HasPrefix(href, routepath.ServicesPrefix):
			serviceLinks++
		case strings.HasPrefix(href, routepath.IndustriesPrefix):
			industryLinks++
		}
	}
	if serviceLinks != footerServiceCount {
		t.Fatalf("footer service links = %d, want %d", serviceLinks, footerServiceCount)
	}
	if industryLinks != len(testChrome().Industries) {
		t.Fatalf("footer industry links = %d", industryLinks)
	}
	if text := htmltest.Text(footer); !strings.Contains(text, "© 2026 Rise Mars") {
		t.Fatalf("footer missing copyright: %q", text)
	}
	footerHrefs := strings.Join(htmltest.Hrefs(footer), " ")
	for _, want := range []string{routepath.PrivacyPolicy, routepath.Terms, "tel:+918309583591", "mailto:info.risemars@gmail.com"} {
		if !strings.Contains(footerHrefs, want) {
			t.Fatalf("footer missing link %q in %q", want, footerHrefs)
		}
	}
}

func TestLayoutNavListsEveryServiceAndIndustry(t *testing.T) {
	t.Parallel()

	chrome := testChrome()
	body := renderWithChildren(t, Layout(LayoutOptions{Loc: testLoc, View: routepath.ViewHome, Chrome: chrome}), templ.NopComponent)
	nav := htmltest.Find(htmltest.Parse(t, body), htmltest.ID("site-nav"))
	if nav == nil {
		t.Fatal("expected site nav")
	}
	if _, ok := htmltest.Attr(nav, "hx-swap-oob"); ok {
		t.Fatal("full layout nav must not be out-of-band")
	}
	hrefs := strings.Join(htmltest.Hrefs(nav), " ")
	for _, entry := range chrome.Services {
		if !strings.Contains(hrefs, routepath.Service(entry.Slug)) {
			t.Fatalf("nav missing service %q", entry.Slug)
		}
	}
	for _, entry := range chrome.Industries {
		if !strings.Contains(hrefs, routepath.Industry(entry.Slug)) {
			t.Fatalf("nav missing industry %q", entry.Slug)
		}
	}
}

func TestMainFragmentRefreshesNavOutOfBand(t *testing.T) {
	t.Parallel()

	body := renderWithChildren(t, MainFragment(LayoutOptions{
		Title:  "Contact Us | Rise Mars Digital Solutions",
		Loc:    testLoc,
		View:   routepath.ViewContact,
		Chrome: testChrome(),
	}), templ.Raw(`<section id="page">x</section>`))

	if strings.Contains(body, "<footer") || strings.Contains(body, "<!doctype") {
		t.Fatal("fragment must not include the document shell")
	}
	doc := htmltest.Parse(t, body)
	if got := htmltest.Text(htmltest.Find(doc, htmltest.Tag("title"))); got != "Contact Us | Rise Mars Digital Solutions" {
		t.Fatalf("title = %q", got)
	}
	if htmltest.Find(doc, htmltest.ID("page")) == nil {
		t.Fatal("expected page content")
	}
	nav := htmltest.Find(doc, htmltest.ID("site-nav"))
	if oob, _ := htmltest.Attr(nav, "hx-swap-oob"); oob != "true" {
		t.Fatalf("hx-swap-oob = %q", oob)
	}
	current := htmltest.Find(nav, htmltest.AttrEquals("aria-current", "page"))
	if href, _ := htmltest.Attr(current, "href"); href != routepath.Contact {
		t.Fatalf("current link = %q", href)
	}
}

func TestNavItemsActiveState(t *testing.T) {
	t.Parallel()

	chrome := testChrome()
	tests := []struct {
		name        string
		view        routepath.View
		slug        string
		wantActive  string
		wantCurrent string
	}{
		{name: "home", view: routepath.ViewHome, wantActive: routepath.Root, wantCurrent: routepath.Root},
		{name: "about", view: routepath.ViewAbout, wantActive: routepath.About, wantCurrent: routepath.About},
		{name: "services list", view: routepath.ViewServices, wantActive: routepath.Services, wantCurrent: routepath.Services},
		{name: "service detail", view: routepath.ViewServiceDetail, slug: "seo", wantActive: routepath.Services},
		{name: "industry detail", view: routepath.ViewIndustryDetail, slug: "education", wantActive: routepath.Industries},
		{name: "contact", view: routepath.ViewContact, wantActive: routepath.Contact, wantCurrent: routepath.Contact},
		{name: "privacy", view: routepath.ViewPrivacy},
		{name: "not found", view: routepath.ViewNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var active, current []string
			for _, item := range NavItems(testLoc, tc.view, tc.slug, chrome) {
				if item.Active {
					active = append(active, item.Href)
				}
				if item.Current {
					current = append(current, item.Href)
				}
			}
			if got := strings.Join(active, ","); got != tc.wantActive {
				t.Fatalf("active = %q, want %q", got, tc.wantActive)
			}
			if got := strings.Join(current, ","); got != tc.wantCurrent {
				t.Fatalf("current = %q, want %q", got, tc.wantCurrent)
			}
		})
	}
}

func TestNavItemsMarksCurrentDetailChild(t *testing.T) {
	t.Parallel()

	items := NavItems(testLoc, routepath.ViewServiceDetail, "seo", testChrome())
	var current []string
	for _, item := range items {
		for _, child := range item.Children {
			if child.Current {
				current = append(current, child.Href)
			}
		}
	}
	if len(current) != 1 || current[0] != routepath.Service("seo") {
		t.Fatalf("current children = %v", current)
	}
}
