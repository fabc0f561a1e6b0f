package pages

import (
	"net/http"

	"github.com/risemars/site/internal/services/web/platform/pagerender"
	"github.com/risemars/site/internal/services/web/platform/publichandler"
	"github.com/risemars/site/internal/services/web/routepath"
	webtemplates "github.com/risemars/site/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	service service
}

func newHandlers(s service, base publichandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(w, r)
	view := h.service.home(r.URL.Query().Get(routepath.HomeFeaturedParam))
	h.WritePage(w, r, pagerender.Page{
		View:     routepath.ViewHome,
		Fragment: webtemplates.HomeFragment(view, loc),
		Loc:      loc,
		Lang:     lang,
	})
}

func (h handlers) handleAbout(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(w, r)
	h.WritePage(w, r, pagerender.Page{
		Title:    webtemplates.T(loc, "about.page_title"),
		View:     routepath.ViewAbout,
		Fragment: webtemplates.AboutFragment(loc),
		Loc:      loc,
		Lang:     lang,
	})
}

func (h handlers) handlePrivacy(w http.ResponseWriter, r *http.Request) {
	h.writeLegal(w, r, routepath.ViewPrivacy, webtemplates.LegalPrivacy)
}

func (h handlers) handleTerms(w http.ResponseWriter, r *http.Request) {
	h.writeLegal(w, r, routepath.ViewTerms, webtemplates.LegalTerms)
}

func (h handlers) writeLegal(w http.ResponseWriter, r *http.Request, view routepath.View, doc webtemplates.LegalDocument) {
	loc, lang := h.PageLocalizer(w, r)
	h.WritePage(w, r, pagerender.Page{
		Title:    webtemplates.T(loc, doc.PageTitleKey()),
		View:     view,
		Fragment: webtemplates.LegalFragment(doc, loc),
		Loc:      loc,
		Lang:     lang,
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
