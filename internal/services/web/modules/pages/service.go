package pages

import (
	"strconv"
	"strings"

	"github.com/risemars/site/internal/services/web/content"
	"github.com/risemars/site/internal/services/web/rotation"
	webtemplates "github.com/risemars/site/internal/services/web/templates"
)

const (
	homeServiceCount  = 6
	homeIndustryCount = 3
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

// home builds the home view with the featured rotation pinned at the
// requested position. Unparseable positions start the rotation at 0.
func (s service) home(featured string) webtemplates.HomeView {
	services := s.registry.ListServices()
	index, err := strconv.Atoi(strings.TrimSpace(featured))
	if err != nil {
		index = 0
	}
	return webtemplates.HomeView{
		Featured: webtemplates.FeaturedView{
			Index:    rotation.Normalize(index, len(services)),
			Services: services,
		},
		Services:   content.First(services, homeServiceCount),
		Industries: content.First(s.registry.ListIndustries(), homeIndustryCount),
	}
}
