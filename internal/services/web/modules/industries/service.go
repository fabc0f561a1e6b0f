package industries

import (
	"github.com/risemars/site/internal/services/web/content"
	webtemplates "github.com/risemars/site/internal/services/web/templates"
)

const (
	keyServiceCount = 4
	otherCount      = 3
)

type service struct {
	registry *content.Registry
}

func newService(registry *content.Registry) service {
	if registry == nil {
		registry = content.Default()
	}
	return service{registry: registry}
}

func (s service) list() []content.IndustryEntry {
	return s.registry.ListIndustries()
}

// detail returns the page view for slug. ok is false when no industry has
// that slug.
func (s service) detail(slug string) (webtemplates.IndustryDetailView, bool) {
	all := s.registry.ListIndustries()
	entry, ok := content.FindBySlug(all, slug)
	if !ok {
		return webtemplates.IndustryDetailView{}, false
	}
	prev, next, _ := content.Neighbors(all, slug)
	return webtemplates.IndustryDetailView{
		Industry:    entry,
		Prev:        prev,
		Next:        next,
		Others:      content.Related(all, slug, otherCount),
		KeyServices: content.First(s.registry.ListServices(), keyServiceCount),
	}, true
}
