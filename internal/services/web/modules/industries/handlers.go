package industries

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

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.PageLocalizer(w, r)
	h.WritePage(w, r, pagerender.Page{
		Title:    webtemplates.T(loc, "industries.page_title"),
		View:     routepath.ViewIndustries,
		Fragment: webtemplates.IndustriesFragment(h.service.list(), loc),
		Loc:      loc,
		Lang:     lang,
	})
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue(routepath.SlugPathValue)
	view, ok := h.service.detail(slug)
	if !ok {
		h.Redirect(w, r, routepath.Industries)
		return
	}
	loc, lang := h.PageLocalizer(w, r)
	h.WritePage(w, r, pagerender.Page{
		Title:    view.Industry.Name,
		View:     routepath.ViewIndustryDetail,
		Slug:     slug,
		Fragment: webtemplates.IndustryDetailFragment(view, loc),
		Loc:      loc,
		Lang:     lang,
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
