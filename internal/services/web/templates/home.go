package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/risemars/site/internal/services/web/content"
	"github.com/risemars/site/internal/services/web/routepath"
)

// FeaturedView is one position of the featured-service rotation.
type FeaturedView struct {
	Index    int
	Services []content.ServiceEntry
}

// Current returns the entry at Index, or false when the rotation is empty.
func (v FeaturedView) Current() (content.ServiceEntry, bool) {
	if v.Index < 0 || v.Index >= len(v.Services) {
		return content.ServiceEntry{}, false
	}
	return v.Services[v.Index], true
}

// HomeView carries the home page data.
type HomeView struct {
	Featured   FeaturedView
	Services   []content.ServiceEntry
	Industries []content.IndustryEntry
}

// HomeFragment renders the home page body.
func HomeFragment(view HomeView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)

		writeHero(m, heroCopy{
			Lead:     T(loc, "home.hero.title_lead"),
			Accent:   T(loc, "home.hero.title_accent"),
			Subtitle: T(loc, "home.hero.subtitle"),
		}, "hero-home")
		m.open("div", "class", "hero-actions")
		m.link(routepath.Contact, "button button-primary", func() { m.text(T(loc, "home.hero.get_started")) })
		m.link(routepath.Services, "button button-outline", func() { m.text(T(loc, "home.hero.explore_services")) })
		m.close("div")
		closeHero(m)

		if _, ok := view.Featured.Current(); ok {
			m.open("section", "class", "section featured-section")
			m.open("div", "class", "container")
			writeSectionHeading(m, T(loc, "home.featured.eyebrow"), T(loc, "home.featured.heading"), "")
			m.open("div", "id", "featured", "class", "featured", "aria-live", "polite", "data-featured-stream", routepath.FeaturedStream)
			m.render(FeaturedCard(view.Featured, loc))
			m.close("div")
			m.open("div", "class", "section-action")
			m.link(routepath.Services, "link-arrow", func() {
				m.text(T(loc, "home.featured.more"))
				writeIcon(m, "arrow-right", "icon icon-sm")
			})
			m.close("div")
			m.close("div")
			m.close("section")
		}

		m.open("section", "class", "section")
		m.open("div", "class", "container")
		writeSectionHeading(m, T(loc, "home.services.eyebrow"), T(loc, "home.services.heading"), T(loc, "home.services.subtitle"))
		m.open("div", "class", "card-grid")
		for _, entry := range view.Services {
			writeServiceCard(m, loc, entry)
		}
		m.close("div")
		m.open("div", "class", "section-action")
		m.link(routepath.Services, "button button-outline", func() { m.text(T(loc, "home.services.view_all")) })
		m.close("div")
		m.close("div")
		m.close("section")

		m.open("section", "class", "section section-muted")
		m.open("div", "class", "container split")
		m.open("div")
		writeSectionHeading(m, T(loc, "home.purpose.eyebrow"), T(loc, "home.purpose.heading"), "")
		m.elem("h3", T(loc, "home.purpose.mission_heading"))
		m.elem("p", T(loc, "home.purpose.mission"))
		m.elem("h3", T(loc, "home.purpose.vision_heading"))
		m.elem("p", T(loc, "home.purpose.vision"))
		m.close("div")
		m.open("div")
		m.elem("h3", T(loc, "home.approach.heading"))
		writeFeatureGrid(m, "feature-list", []featureCopy{
			{Icon: "bar-chart", Title: T(loc, "home.approach.data_title"), Body: T(loc, "home.approach.data_body")},
			{Icon: "code", Title: T(loc, "home.approach.tech_title"), Body: T(loc, "home.approach.tech_body")},
			{Icon: "heart", Title: T(loc, "home.approach.partner_title"), Body: T(loc, "home.approach.partner_body")},
		})
		m.link(routepath.About, "link-arrow", func() {
			m.text(T(loc, "home.approach.learn_more"))
			writeIcon(m, "arrow-right", "icon icon-sm")
		})
		m.close("div")
		m.close("div")
		m.close("section")

		m.open("section", "class", "section")
		m.open("div", "class", "container")
		writeSectionHeading(m, T(loc, "home.industries.eyebrow"), T(loc, "home.industries.heading"), T(loc, "home.industries.subtitle"))
		m.open("div", "class", "card-grid")
		for _, entry := range view.Industries {
			writeIndustryCard(m, loc, entry)
		}
		m.close("div")
		m.open("div", "class", "section-action")
		m.link(routepath.Industries, "button button-outline", func() { m.text(T(loc, "home.industries.view_all")) })
		m.close("div")
		m.close("div")
		m.close("section")

		writeCTA(m, T(loc, "home.cta.heading"), T(loc, "home.cta.body"), T(loc, "home.cta.action"))
		return m.err
	})
}

// FeaturedCard renders the featured service card and its position dots.
// Dots fetch their card in place when htmx is present and fall back to the
// home page pinned at that position otherwise.
func FeaturedCard(view FeaturedView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		entry, ok := view.Current()
		if !ok {
			return nil
		}
		m.open("article", "class", "featured-card", "data-featured-index", strconv.Itoa(view.Index))
		m.open("div", "class", "featured-media")
		writeImage(m, entry.ImageURL, entry.Name, "featured-image")
		m.close("div")
		m.open("div", "class", "featured-body")
		m.open("div", "class", "card-icon")
		writeIcon(m, entry.IconRef, "icon")
		m.close("div")
		m.elem("h3", entry.Name)
		m.elem("p", entry.ShortDescription)
		m.link(routepath.Service(entry.Slug), "link-arrow", func() {
			m.text(T(loc, "core.action.learn_more"))
			writeIcon(m, "arrow-right", "icon icon-sm")
		})
		m.close("div")
		m.close("article")

		m.open("div", "class", "featured-dots")
		for idx, dot := range view.Services {
			class := "featured-dot"
			attrs := []string{
				"href", string(templ.URL(routepath.HomeWithFeatured(idx))),
				"hx-get", routepath.FeaturedAt(idx),
				"hx-target", "#featured",
				"hx-swap", "innerHTML",
				"hx-push-url", "false",
				"aria-label", T(loc, "home.featured.show", dot.Name),
			}
			if idx == view.Index {
				class += " is-active"
				attrs = append(attrs, "aria-current", "true")
			}
			attrs = append(attrs, "class", class)
			m.open("a", attrs...)
			m.close("a")
		}
		m.close("div")
		return m.err
	})
}
