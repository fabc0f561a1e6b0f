package pages

import (
	"net/http"

	"github.com/risemars/site/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.About, h.handleAbout)
	mux.HandleFunc(http.MethodGet+" "+routepath.PrivacyPolicy, h.handlePrivacy)
	mux.HandleFunc(http.MethodGet+" "+routepath.Terms, h.handleTerms)
	mux.HandleFunc(http.MethodGet+" "+routepath.Root, h.handleNotFound)
}
