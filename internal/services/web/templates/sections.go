package templates

import (
	"fmt"

	"github.com/a-h/templ"
	"github.com/risemars/site/internal/services/web/content"
	"github.com/risemars/site/internal/services/web/routepath"
)

type heroCopy struct {
	Eyebrow  string
	Lead     string
	Accent   string
	Subtitle string
}

func writeHero(m *markup, hero heroCopy, class string) {
	m.open("section", "class", "hero "+class)
	m.open("div", "class", "container hero-inner")
	if hero.Eyebrow != "" {
		m.elem("p", hero.Eyebrow, "class", "eyebrow")
	}
	m.open("h1", "class", "hero-title")
	m.text(hero.Lead + " ")
	m.elem("span", hero.Accent, "class", "accent")
	m.close("h1")
	m.elem("p", hero.Subtitle, "class", "hero-subtitle")
}

func closeHero(m *markup) {
	m.close("div")
	m.close("section")
}

func writeSectionHeading(m *markup, eyebrow, heading, subtitle string) {
	m.open("div", "class", "section-heading")
	if eyebrow != "" {
		m.elem("p", eyebrow, "class", "eyebrow")
	}
	m.elem("h2", heading)
	if subtitle != "" {
		m.elem("p", subtitle, "class", "section-subtitle")
	}
	m.close("div")
}

type featureCopy struct {
	Icon  string
	Title string
	Body  string
}

func writeFeatureGrid(m *markup, class string, features []featureCopy) {
	m.open("div", "class", "feature-grid "+class)
	for idx, feature := range features {
		m.open("article", "class", "feature-card")
		if feature.Icon != "" {
			m.open("div", "class", "feature-icon")
			writeIcon(m, feature.Icon, "icon")
			m.close("div")
		} else {
			m.open("div", "class", "feature-step")
			m.text(stepNumber(idx + 1))
			m.close("div")
		}
		m.elem("h3", feature.Title)
		m.elem("p", feature.Body)
		m.close("article")
	}
	m.close("div")
}

func stepNumber(n int) string {
	return fmt.Sprintf("%02d", n)
}

func writeServiceCard(m *markup, loc Localizer, entry content.ServiceEntry) {
	m.open("article", "class", "card service-card")
	m.open("div", "class", "card-icon")
	writeIcon(m, entry.IconRef, "icon")
	m.close("div")
	m.elem("h3", entry.Name)
	m.elem("p", entry.ShortDescription)
	m.link(routepath.Service(entry.Slug), "link-arrow", func() {
		m.text(T(loc, "core.action.learn_more"))
		writeIcon(m, "arrow-right", "icon icon-sm")
	})
	m.close("article")
}

func writeIndustryCard(m *markup, loc Localizer, entry content.IndustryEntry) {
	m.open("article", "class", "card industry-card")
	writeImage(m, entry.ImageURL, entry.Name, "card-image")
	m.open("div", "class", "card-body")
	m.elem("h3", entry.Name)
	m.link(routepath.Industry(entry.Slug), "link-arrow", func() {
		m.text(T(loc, "core.action.explore"))
		writeIcon(m, "arrow-right", "icon icon-sm")
	})
	m.close("div")
	m.close("article")
}

func writeImage(m *markup, src, alt, class string) {
	if src == "" {
		return
	}
	m.open("img", "src", string(templ.URL(src)), "alt", alt, "class", class, "loading", "lazy", "decoding", "async")
}

func writeCTA(m *markup, heading, body, action string) {
	m.open("section", "class", "cta-banner")
	m.open("div", "class", "container cta-inner")
	m.elem("h2", heading)
	m.elem("p", body)
	m.link(routepath.Contact, "button button-light", func() { m.text(action) })
	m.close("div")
	m.close("section")
}

// writeMarkdownBody writes content rendered at load time from the embedded
// tables; it never carries request data.
func writeMarkdownBody(m *markup, html string) {
	m.open("div", "class", "prose")
	m.raw(html)
	m.close("div")
}
