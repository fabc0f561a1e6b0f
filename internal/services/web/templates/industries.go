package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/risemars/site/internal/services/web/content"
	"github.com/risemars/site/internal/services/web/routepath"
)

// IndustriesFragment renders the industries listing in registry order.
func IndustriesFragment(industries []content.IndustryEntry, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		writeHero(m, heroCopy{
			Eyebrow:  T(loc, "industries.hero.eyebrow"),
			Lead:     T(loc, "industries.hero.title_lead"),
			Accent:   T(loc, "industries.hero.title_accent"),
			Subtitle: T(loc, "industries.hero.subtitle"),
		}, "hero-page")
		closeHero(m)

		m.open("section", "class", "section section-muted")
		m.open("div", "class", "container")
		m.open("div", "class", "card-grid")
		for _, entry := range industries {
			writeIndustryCard(m, loc, entry)
		}
		m.close("div")
		m.close("div")
		m.close("section")

		m.open("section", "class", "section")
		m.open("div", "class", "container")
		writeSectionHeading(m, T(loc, "industries.approach.eyebrow"), T(loc, "industries.approach.heading"), T(loc, "industries.approach.subtitle"))
		writeFeatureGrid(m, "feature-grid-3", []featureCopy{
			{Icon: "search", Title: T(loc, "industries.approach.analysis_title"), Body: T(loc, "industries.approach.analysis_body")},
			{Icon: "target", Title: T(loc, "industries.approach.custom_title"), Body: T(loc, "industries.approach.custom_body")},
			{Icon: "zap", Title: T(loc, "industries.approach.execution_title"), Body: T(loc, "industries.approach.execution_body")},
		})
		m.close("div")
		m.close("section")

		writeCTA(m, T(loc, "industries.cta.heading"), T(loc, "industries.cta.body"), T(loc, "core.action.contact_us"))
		return m.err
	})
}

// IndustryDetailView carries one industry with its neighbours and the
// services highlighted for it.
type IndustryDetailView struct {
	Industry    content.IndustryEntry
	Prev        *content.IndustryEntry
	Next        *content.IndustryEntry
	Others      []content.IndustryEntry
	KeyServices []content.ServiceEntry
}

// IndustryDetailFragment renders one industry page.
func IndustryDetailFragment(view IndustryDetailView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		industry := view.Industry
		lowerName := strings.ToLower(industry.Name)

		m.open("section", "class", "hero hero-detail")
		writeImage(m, industry.ImageURL, "", "hero-backdrop")
		m.open("div", "class", "container hero-inner")
		writeBackLink(m, routepath.Industries, T(loc, "industry_detail.back"))
		m.elem("h1", industry.Name, "class", "hero-title")
		m.elem("p", T(loc, "industry_detail.subtitle", lowerName), "class", "hero-subtitle")
		m.close("div")
		m.close("section")

		m.open("section", "class", "section")
		m.open("div", "class", "container narrow")
		writeMarkdownBody(m, industry.BodyHTML)

		if len(view.KeyServices) > 0 {
			m.open("div", "class", "key-services")
			m.elem("h3", T(loc, "industry_detail.key_services_heading", industry.Name))
			m.open("div", "class", "card-grid card-grid-2")
			for _, entry := range view.KeyServices {
				m.open("article", "class", "card card-bordered")
				m.elem("h4", entry.Name)
				m.elem("p", entry.ShortDescription)
				m.link(routepath.Service(entry.Slug), "link-arrow", func() {
					m.text(T(loc, "core.action.learn_more"))
					writeIcon(m, "arrow-right", "icon icon-sm")
				})
				m.close("article")
			}
			m.close("div")
			m.close("div")
		}

		m.open("div", "class", "panel panel-soft")
		m.elem("h3", T(loc, "industry_detail.story.heading"))
		m.elem("p", T(loc, "industry_detail.story.intro", lowerName))
		m.open("dl", "class", "stats")
		for _, stat := range [][2]string{
			{"industry_detail.story.traffic_value", "industry_detail.story.traffic_label"},
			{"industry_detail.story.conversion_value", "industry_detail.story.conversion_label"},
			{"industry_detail.story.roas_value", "industry_detail.story.roas_label"},
		} {
			m.open("div", "class", "stat")
			m.elem("dt", T(loc, stat[0]), "class", "stat-value")
			m.elem("dd", T(loc, stat[1]), "class", "stat-label")
			m.close("div")
		}
		m.close("dl")
		m.open("div", "class", "panel-action")
		m.link(routepath.Contact, "button button-primary", func() { m.text(T(loc, "industry_detail.story.action")) })
		m.close("div")
		m.close("div")

		writeInlineCTA(m, loc, T(loc, "industry_detail.cta.heading", lowerName), T(loc, "industry_detail.cta.body"))

		writePager(m, T(loc, "industry_detail.pager_label"), industryPagerTarget(view.Prev), industryPagerTarget(view.Next))
		m.close("div")
		m.close("section")

		if len(view.Others) > 0 {
			m.open("section", "class", "section section-muted")
			m.open("div", "class", "container narrow")
			m.elem("h2", T(loc, "industry_detail.other_heading"))
			m.open("div", "class", "card-grid card-grid-3")
			for _, entry := range view.Others {
				m.link(routepath.Industry(entry.Slug), "card card-link", func() {
					m.elem("h3", entry.Name)
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
