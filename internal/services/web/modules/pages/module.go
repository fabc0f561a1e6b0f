// Package pages serves the home, about and legal pages plus the site-wide
// not-found fallback.
package pages

import (
	"net/http"

	"github.com/risemars/site/internal/services/web/content"
	"github.com/risemars/site/internal/services/web/module"
	"github.com/risemars/site/internal/services/web/platform/publichandler"
	"github.com/risemars/site/internal/services/web/routepath"
)

// Module provides the root-mounted page routes.
type Module struct {
	base     publichandler.Base
	registry *content.Registry
}

// New returns the pages module.
func New(base publichandler.Base, registry *content.Registry) Module {
	return Module{base: base, registry: registry}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "pages" }

// Mount wires page routes under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.registry), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
