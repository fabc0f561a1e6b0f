package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// LegalDocument selects which static legal page to render.
type LegalDocument string

const (
	LegalPrivacy LegalDocument = "privacy"
	LegalTerms   LegalDocument = "terms"
)

// PageTitleKey returns the catalog key for the document's page title.
func (d LegalDocument) PageTitleKey() string {
	return "legal." + string(d) + ".page_title"
}

// LegalFragment renders the privacy policy or terms of service.
func LegalFragment(doc LegalDocument, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		prefix := "legal." + string(doc) + "."
		m.open("section", "class", "section legal")
		m.open("div", "class", "container narrow")
		m.elem("h1", T(loc, prefix+"heading"))
		m.open("div", "class", "prose")
		for _, paragraph := range []string{"p1", "p2", "p3", "p4", "p5"} {
			m.elem("p", T(loc, prefix+paragraph))
		}
		m.elem("p", T(loc, prefix+"contact"), "class", "legal-contact")
		m.close("div")
		m.close("div")
		m.close("section")
		return m.err
	})
}
