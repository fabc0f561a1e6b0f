package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/risemars/site/internal/services/web/content"
	"github.com/risemars/site/internal/services/web/routepath"
)

// ServicesFragment renders the services listing in registry order.
func ServicesFragment(services []content.ServiceEntry, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		writeHero(m, heroCopy{
			Eyebrow:  T(loc, "services.hero.eyebrow"),
			Lead:     T(loc, "services.hero.title_lead"),
			Accent:   T(loc, "services.hero.title_accent"),
			Subtitle: T(loc, "services.hero.subtitle"),
		}, "hero-page")
		closeHero(m)

		m.open("section", "class", "section section-muted")
		m.open("div", "class", "container")
		m.open("div", "class", "card-grid")
		for _, entry := range services {
			writeServiceCard(m, loc, entry)
		}
		m.close("div")
		m.close("div")
		m.close("section")

		m.open("section", "class", "section")
		m.open("div", "class", "container")
		writeSectionHeading(m, T(loc, "services.approach.eyebrow"), T(loc, "services.approach.heading"), T(loc, "services.approach.subtitle"))
		writeFeatureGrid(m, "feature-grid-4 feature-steps", []featureCopy{
			{Title: T(loc, "services.approach.discovery_title"), Body: T(loc, "services.approach.discovery_body")},
			{Title: T(loc, "services.approach.strategy_title"), Body: T(loc, "services.approach.strategy_body")},
			{Title: T(loc, "services.approach.implementation_title"), Body: T(loc, "services.approach.implementation_body")},
			{Title: T(loc, "services.approach.optimization_title"), Body: T(loc, "services.approach.optimization_body")},
		})
		m.close("div")
		m.close("section")

		writeCTA(m, T(loc, "services.cta.heading"), T(loc, "services.cta.body"), T(loc, "core.action.get_started_today"))
		return m.err
	})
}

// ServiceDetailView carries one service with its neighbours in registry order.
type ServiceDetailView struct {
	Service content.ServiceEntry
	Prev    *content.ServiceEntry
	Next    *content.ServiceEntry
	Related []content.ServiceEntry
}

var serviceBenefitKeys = []string{
	"service_detail.benefit_data",
	"service_detail.benefit_specialists",
	"service_detail.benefit_custom",
	"service_detail.benefit_reporting",
	"service_detail.benefit_optimization",
	"service_detail.benefit_integrated",
}

// ServiceDetailFragment renders one service page.
func ServiceDetailFragment(view ServiceDetailView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		service := view.Service

		m.open("section", "class", "hero hero-detail")
		writeImage(m, service.ImageURL, "", "hero-backdrop")
		m.open("div", "class", "container hero-inner")
		writeBackLink(m, routepath.Services, T(loc, "service_detail.back"))
		m.open("div", "class", "card-icon card-icon-light")
		writeIcon(m, service.IconRef, "icon")
		m.close("div")
		m.elem("h1", service.Name, "class", "hero-title")
		m.elem("p", service.ShortDescription, "class", "hero-subtitle")
		m.close("div")
		m.close("section")

		m.open("section", "class", "section")
		m.open("div", "class", "container narrow")
		writeMarkdownBody(m, service.BodyHTML)

		m.open("div", "class", "panel")
		m.elem("h3", T(loc, "service_detail.why_heading", service.Name))
		m.open("ul", "class", "check-list")
		for _, key := range serviceBenefitKeys {
			m.raw("<li>")
			writeIcon(m, "circle-check", "icon icon-sm")
			m.elem("span", T(loc, key))
			m.raw("</li>")
		}
		m.close("ul")
		m.close("div")

		writeInlineCTA(m, loc, T(loc, "service_detail.cta.heading", service.Name), T(loc, "service_detail.cta.body"))

		writePager(m, T(loc, "service_detail.pager_label"), servicePagerTarget(view.Prev), servicePagerTarget(view.Next))
		m.close("div")
		m.close("section")

		if len(view.Related) > 0 {
			m.open("section", "class", "section section-muted")
			m.open("div", "class", "container narrow")
			m.elem("h2", T(loc, "service_detail.related_heading"))
			m.open("div", "class", "card-grid card-grid-3")
			for _, entry := range view.Related {
				m.link(routepath.Service(entry.Slug), "card card-link", func() {
					m.elem("h3", entry.Name)
					m.elem("p", entry.ShortDescription, "class", "clamp-2")
					m.open("span", "class", "link-arrow")
					m.text(T(loc, "core.action.learn_more"))
					writeIcon(m, "arrow-right", "icon icon-sm")
					m.close("span")
				})
			}
			m.close("div")
			m.close("div")
			m.close("section")
		}
		return m.err
	})
}

type pagerTarget struct {
	Href  string
	Label string
}

func servicePagerTarget(entry *content.ServiceEntry) *pagerTarget {
	if entry == nil {
		return nil
	}
	return &pagerTarget{Href: routepath.Service(entry.Slug), Label: entry.Name}
}

func industryPagerTarget(entry *content.IndustryEntry) *pagerTarget {
	if entry == nil {
		return nil
	}
	return &pagerTarget{Href: routepath.Industry(entry.Slug), Label: entry.Name}
}

// writePager renders previous and next links; the ends do not wrap.
func writePager(m *markup, label string, prev, next *pagerTarget) {
	m.open("nav", "class", "pager", "aria-label", label)
	if prev != nil {
		m.link(prev.Href, "pager-link pager-prev", func() {
			writeIcon(m, "arrow-left", "icon icon-sm")
			m.text(prev.Label)
		})
	} else {
		m.raw(`<span></span>`)
	}
	if next != nil {
		m.link(next.Href, "pager-link pager-next", func() {
			m.text(next.Label)
			writeIcon(m, "arrow-right", "icon icon-sm")
		})
	}
	m.close("nav")
}

func writeBackLink(m *markup, href, label string) {
	m.link(href, "back-link", func() {
		writeIcon(m, "arrow-left", "icon icon-sm")
		m.text(label)
	})
}

func writeInlineCTA(m *markup, loc Localizer, heading, body string) {
	m.open("div", "class", "panel panel-accent")
	m.elem("h3", heading)
	m.elem("p", body)
	m.link(routepath.Contact, "button button-light", func() {
		m.text(T(loc, "core.action.contact_us"))
		writeIcon(m, "arrow-right", "icon icon-sm")
	})
	m.close("div")
}
