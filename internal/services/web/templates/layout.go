package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/risemars/site/internal/platform/icons"
	"github.com/risemars/site/internal/services/web/content"
	"github.com/risemars/site/internal/services/web/routepath"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// htmxConfig lets boosted requests swap validation (422), rate-limit (429)
// and not-found (404) responses instead of discarding them.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"404","swap":true},{"code":"422","swap":true},{"code":"429","swap":true},{"code":"[45]..","swap":false,"error":true}],"scrollIntoViewOnBoost":false}`

// LayoutOptions configures the full document shell.
type LayoutOptions struct {
	Title       string
	Description string
	Lang        string
	Loc         Localizer
	View        routepath.View
	Slug        string
	Chrome      Chrome
}

// Layout renders the full HTML document around the children component.
func Layout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		lang := opts.Lang
		if lang == "" {
			lang = "en-US"
		}
		m.raw("<!doctype html>")
		m.open("html", "lang", lang)
		m.raw("<head>")
		m.raw(`<meta charset="utf-8">`)
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.elem("title", opts.Title)
		m.open("meta", "name", "description", "content", opts.Description)
		m.open("meta", "name", "htmx-config", "content", htmxConfig)
		m.open("link", "rel", "stylesheet", "href", routepath.StaticPrefix+"site.css")
		m.open("script", "src", htmxScriptURL, "defer", "defer")
		m.close("script")
		m.open("script", "src", routepath.StaticPrefix+"site.js", "defer", "defer")
		m.close("script")
		m.raw("</head>")
		m.open("body", "hx-boost", "true", "hx-target", "#main", "hx-swap", "innerHTML show:window:top")
		m.raw(icons.Sprite())
		m.open("a", "class", "skip-link", "href", "#main")
		m.text(opts.Chrome.AppName)
		m.close("a")
		writeHeader(m, opts)
		m.open("main", "id", "main", "class", "site-main", "tabindex", "-1")
		m.children()
		m.close("main")
		writeFooter(m, opts.Loc, opts.Chrome)
		m.raw("</body></html>")
		return m.err
	})
}

// MainFragment renders the htmx partial: a <title> for the history entry,
// the children, and an out-of-band navigation refresh so the active state
// follows boosted navigation.
func MainFragment(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.elem("title", opts.Title)
		m.children()
		writeNav(m, opts, true)
		return m.err
	})
}

func writeHeader(m *markup, opts LayoutOptions) {
	m.open("header", "class", "site-header", "data-site-header", "")
	m.open("div", "class", "container header-inner")
	m.link(routepath.Root, "brand", func() {
		m.open("svg", "class", "brand-mark", "role", "img", "aria-label", T(opts.Loc, "core.brand.logo_alt"))
		m.open("use", "href", icons.SymbolID("rocket"))
		m.raw("</use></svg>")
		m.open("span", "class", "brand-word")
		m.text(T(opts.Loc, "core.brand.rise") + " ")
		m.elem("span", T(opts.Loc, "core.brand.mars"), "class", "accent")
		m.close("span")
	})
	m.open("button", "type", "button", "class", "nav-toggle", "aria-controls", "site-nav", "aria-expanded", "false", "aria-label", T(opts.Loc, "core.nav.toggle_menu"), "data-nav-toggle", "")
	writeIcon(m, "menu", "icon")
	m.close("button")
	writeNav(m, opts, false)
	m.close("div")
	m.close("header")
}

func writeNav(m *markup, opts LayoutOptions, outOfBand bool) {
	attrs := []string{"id", "site-nav", "class", "site-nav", "aria-label", T(opts.Loc, "core.nav.main_label")}
	if outOfBand {
		attrs = append(attrs, "hx-swap-oob", "true")
	}
	m.open("nav", attrs...)
	m.open("ul", "class", "nav-list")
	for _, item := range NavItems(opts.Loc, opts.View, opts.Slug, opts.Chrome) {
		itemClass := "nav-item"
		if len(item.Children) > 0 {
			itemClass += " has-dropdown"
		}
		m.open("li", "class", itemClass)
		linkAttrs := []string{"href", string(templ.URL(item.Href)), "class", navLinkClass(item.Active)}
		if item.Current {
			linkAttrs = append(linkAttrs, "aria-current", "page")
		}
		m.open("a", linkAttrs...)
		m.text(item.Label)
		if len(item.Children) > 0 {
			writeIcon(m, "chevron-down", "icon icon-sm")
		}
		m.close("a")
		if len(item.Children) > 0 {
			m.open("ul", "class", "dropdown")
			for _, child := range item.Children {
				m.raw("<li>")
				childAttrs := []string{"href", string(templ.URL(child.Href)), "class", navLinkClass(child.Current)}
				if child.Current {
					childAttrs = append(childAttrs, "aria-current", "page")
				}
				m.open("a", childAttrs...)
				m.text(child.Label)
				m.close("a")
				m.raw("</li>")
			}
			m.close("ul")
		}
		m.close("li")
	}
	m.close("ul")
	m.close("nav")
}

func navLinkClass(active bool) string {
	if active {
		return "nav-link is-active"
	}
	return "nav-link"
}

func writeFooter(m *markup, loc Localizer, chrome Chrome) {
	m.open("footer", "class", "site-footer")
	m.open("div", "class", "container footer-grid")

	m.open("div", "class", "footer-about")
	m.open("p", "class", "brand-word")
	m.text(T(loc, "core.brand.rise") + " ")
	m.elem("span", T(loc, "core.brand.mars"), "class", "accent")
	m.close("p")
	m.elem("p", T(loc, "core.footer.about"))
	writeSocialLinks(m)
	m.close("div")

	m.open("div", "class", "footer-column")
	m.elem("h3", T(loc, "core.footer.services_heading"))
	m.raw("<ul>")
	for _, entry := range content.First(chrome.Services, footerServiceCount) {
		m.raw("<li>")
		m.link(routepath.Service(entry.Slug), "footer-link", func() { m.text(entry.Name) })
		m.raw("</li>")
	}
	m.raw("</ul>")
	m.close("div")

	m.open("div", "class", "footer-column")
	m.elem("h3", T(loc, "core.footer.industries_heading"))
	m.raw("<ul>")
	for _, entry := range chrome.Industries {
		m.raw("<li>")
		m.link(routepath.Industry(entry.Slug), "footer-link", func() { m.text(entry.Name) })
		m.raw("</li>")
	}
	m.raw("</ul>")
	m.close("div")

	m.open("div", "class", "footer-column")
	m.elem("h3", T(loc, "core.footer.contact_heading"))
	writeContactDetails(m, loc, "footer-contact")
	m.close("div")

	m.close("div")

	m.open("div", "class", "container footer-bottom")
	m.elem("p", T(loc, "core.footer.copyright", strconv.Itoa(chrome.Year)))
	m.open("ul", "class", "footer-legal")
	m.raw("<li>")
	m.link(routepath.PrivacyPolicy, "footer-link", func() { m.text(T(loc, "core.footer.privacy")) })
	m.raw("</li><li>")
	m.link(routepath.Terms, "footer-link", func() { m.text(T(loc, "core.footer.terms")) })
	m.raw("</li>")
	m.close("ul")
	m.close("div")
	m.close("footer")
}

func writeSocialLinks(m *markup) {
	m.open("ul", "class", "social-links")
	for _, social := range socialLinks {
		m.raw("<li>")
		m.open("a", "href", string(templ.URL(social.Href)), "class", "social-link", "aria-label", social.Label, "target", "_blank", "rel", "noopener noreferrer", "hx-boost", "false")
		writeIcon(m, social.Icon, "icon")
		m.close("a")
		m.raw("</li>")
	}
	m.close("ul")
}

type contactDetail struct {
	icon     string
	labelKey string
	valueKey string
	href     string
}

var contactDetails = []contactDetail{
	{icon: "phone", labelKey: "core.contact.phone_label", valueKey: "core.contact.phone", href: "tel:+918309583591"},
	{icon: "mail", labelKey: "core.contact.email_label", valueKey: "core.contact.email", href: "mailto:info.risemars@gmail.com"},
	{icon: "map-pin", labelKey: "core.contact.address_label", valueKey: "core.contact.address", href: "https://maps.google.com/?q=Hyderabad,India"},
}

func writeContactDetails(m *markup, loc Localizer, class string) {
	m.open("ul", "class", class)
	for _, detail := range contactDetails {
		m.open("li", "class", "contact-detail")
		writeIcon(m, detail.icon, "icon")
		m.open("div")
		m.elem("span", T(loc, detail.labelKey), "class", "contact-detail-label")
		m.open("a", "href", string(templ.URL(detail.href)), "hx-boost", "false")
		m.text(T(loc, detail.valueKey))
		m.close("a")
		m.close("div")
		m.close("li")
	}
	m.close("ul")
}

func writeIcon(m *markup, name string, class string) {
	m.open("svg", "class", class, "aria-hidden", "true", "focusable", "false")
	m.open("use", "href", icons.SymbolID(name))
	m.raw("</use></svg>")
}
