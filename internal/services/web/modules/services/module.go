// Package services serves the services listing and per-service detail pages.
package services

import (
	"net/http"

	"github.com/risemars/site/internal/services/web/content"
	"github.com/risemars/site/internal/services/web/module"
	"github.com/risemars/site/internal/services/web/platform/publichandler"
	"github.com/risemars/site/internal/services/web/routepath"
)

// Module provides services routes.
type Module struct {
	base     publichandler.Base
	registry *content.Registry
}

// New returns the services module.
func New(base publichandler.Base, registry *content.Registry) Module {
	return Module{base: base, registry: registry}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "services" }

// Mount wires services routes under the services prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.registry), m.base))
	return module.Mount{Prefix: routepath.ServicesPrefix, Handler: mux}, nil
}
