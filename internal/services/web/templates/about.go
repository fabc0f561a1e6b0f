package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// AboutFragment renders the about page body.
func AboutFragment(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		writeHero(m, heroCopy{
			Eyebrow:  T(loc, "about.hero.eyebrow"),
			Lead:     T(loc, "about.hero.title_lead"),
			Accent:   T(loc, "about.hero.title_accent"),
			Subtitle: T(loc, "about.hero.subtitle"),
		}, "hero-page")
		closeHero(m)

		m.open("section", "class", "section")
		m.open("div", "class", "container narrow")
		writeSectionHeading(m, T(loc, "about.story.eyebrow"), T(loc, "about.story.heading"), "")
		m.open("div", "class", "prose")
		for _, key := range []string{"about.story.p1", "about.story.p2", "about.story.p3"} {
			m.elem("p", T(loc, key))
		}
		m.close("div")
		m.close("div")
		m.close("section")

		m.open("section", "class", "section section-muted")
		m.open("div", "class", "container")
		writeSectionHeading(m, T(loc, "about.values.eyebrow"), T(loc, "about.values.heading"), T(loc, "about.values.subtitle"))
		writeFeatureGrid(m, "feature-grid-4", []featureCopy{
			{Icon: "rocket", Title: T(loc, "about.values.innovation_title"), Body: T(loc, "about.values.innovation_body")},
			{Icon: "bar-chart", Title: T(loc, "about.values.data_title"), Body: T(loc, "about.values.data_body")},
			{Icon: "lightbulb", Title: T(loc, "about.values.creativity_title"), Body: T(loc, "about.values.creativity_body")},
			{Icon: "users", Title: T(loc, "about.values.partnership_title"), Body: T(loc, "about.values.partnership_body")},
		})
		m.close("div")
		m.close("section")

		m.open("section", "class", "section")
		m.open("div", "class", "container split")
		m.open("article", "class", "statement")
		m.elem("h3", T(loc, "about.mission.heading"))
		m.elem("p", T(loc, "about.mission.body"))
		m.close("article")
		m.open("article", "class", "statement statement-accent")
		m.elem("h3", T(loc, "about.vision.heading"))
		m.elem("p", T(loc, "about.vision.body"))
		m.close("article")
		m.close("div")
		m.close("section")

		m.open("section", "class", "section section-muted")
		m.open("div", "class", "container")
		writeSectionHeading(m, T(loc, "about.why.eyebrow"), T(loc, "about.why.heading"), T(loc, "about.why.subtitle"))
		writeFeatureGrid(m, "feature-grid-3", []featureCopy{
			{Icon: "award", Title: T(loc, "about.why.team_title"), Body: T(loc, "about.why.team_body")},
			{Icon: "target", Title: T(loc, "about.why.results_title"), Body: T(loc, "about.why.results_body")},
			{Icon: "clock", Title: T(loc, "about.why.support_title"), Body: T(loc, "about.why.support_body")},
		})
		m.close("div")
		m.close("section")

		writeCTA(m, T(loc, "about.cta.heading"), T(loc, "about.cta.body"), T(loc, "about.cta.action"))
		return m.err
	})
}
