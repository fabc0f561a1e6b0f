package services

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
		Title:    webtemplates.T(loc, "services.page_title"),
		View:     routepath.ViewServices,
		Fragment: webtemplates.ServicesFragment(h.service.list(), loc),
		Loc:      loc,
		Lang:     lang,
	})
}

// handleDetail renders one service. Unknown slugs go back to the listing
// rather than the not-found page.
func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue(routepath.SlugPathValue)
	view, ok := h.service.detail(slug)
	if !ok {
		h.Redirect(w, r, routepath.Services)
		return
	}
	loc, lang := h.PageLocalizer(w, r)
	h.WritePage(w, r, pagerender.Page{
		Title:    view.Service.Name,
		View:     routepath.ViewServiceDetail,
		Slug:     slug,
		Fragment: webtemplates.ServiceDetailFragment(view, loc),
		Loc:      loc,
		Lang:     lang,
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
