package services

import (
	"github.com/risemars/site/internal/services/web/content"
	webtemplates "github.com/risemars/site/internal/services/web/templates"
)

const relatedCount = 3

type service struct {
	registry *content.Registry
}

func newService(registry *content.Registry) service {
	if registry == nil {
		registry = content.Default()
	}
	return service{registry: registry}
}

func (s service) list() []content.ServiceEntry {
	return s.registry.ListServices()
}

// detail returns the page view for slug. ok is false when no service has
// that slug.
func (s service) detail(slug string) (webtemplates.ServiceDetailView, bool) {
	all := s.registry.ListServices()
	entry, ok := content.FindBySlug(all, slug)
	if !ok {
		return webtemplates.ServiceDetailView{}, false
	}
	prev, next, _ := content.Neighbors(all, slug)
	return webtemplates.ServiceDetailView{
		Service: entry,
		Prev:    prev,
		Next:    next,
		Related: content.Related(all, slug, relatedCount),
	}, true
}
