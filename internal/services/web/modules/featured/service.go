package featured

import (
	"github.com/risemars/site/internal/services/web/content"
	"github.com/risemars/site/internal/services/web/rotation"
	webtemplates "github.com/risemars/site/internal/services/web/templates"
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

func (s service) size() int {
	return len(s.registry.ListServices())
}

// view returns the featured view pinned at index, wrapped into range.
func (s service) view(index int) webtemplates.FeaturedView {
	services := s.registry.ListServices()
	return webtemplates.FeaturedView{
		Index:    rotation.Normalize(index, len(services)),
		Services: services,
	}
}
