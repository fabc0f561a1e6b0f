package services

import (
	"net/http"

	"github.com/risemars/site/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Services, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ServiceDetail, h.handleDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.ServicesPrefix, h.handleNotFound)
}
