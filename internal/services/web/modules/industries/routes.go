package industries

import (
	"net/http"

	"github.com/risemars/site/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Industries, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.IndustryDetail, h.handleDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.IndustriesPrefix, h.handleNotFound)
}
