// Package industries serves the industries listing and per-industry pages.
package industries

import (
	"net/http"

	"github.com/risemars/site/internal/services/web/content"
	"github.com/risemars/site/internal/services/web/module"
	"github.com/risemars/site/internal/services/web/platform/publichandler"
	"github.com/risemars/site/internal/services/web/routepath"
)

// Module provides industries routes.
type Module struct {
	base     publichandler.Base
	registry *content.Registry
}

// New returns the industries module.
func New(base publichandler.Base, registry *content.Registry) Module {
	return Module{base: base, registry: registry}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "industries" }

// Mount wires industries routes under the industries prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.registry), m.base))
	return module.Mount{Prefix: routepath.IndustriesPrefix, Handler: mux}, nil
}
