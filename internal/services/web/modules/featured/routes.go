package featured

import (
	"net/http"

	"github.com/risemars/site/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Featured, h.handleCard)
	mux.HandleFunc(http.MethodGet+" "+routepath.FeaturedStream, h.handleStream)
	mux.HandleFunc(http.MethodGet+" "+routepath.FeaturedPrefix, h.handleNotFound)
}
