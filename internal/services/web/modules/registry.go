package modules

import (
	"github.com/risemars/site/internal/services/web/content"
	"github.com/risemars/site/internal/services/web/modules/contact"
	"github.com/risemars/site/internal/services/web/modules/featured"
	"github.com/risemars/site/internal/services/web/modules/industries"
	"github.com/risemars/site/internal/services/web/modules/pages"
	"github.com/risemars/site/internal/services/web/modules/services"
)

// Default returns every site module in mount order.
func Default(deps Dependencies) []Module {
	registry := deps.Registry
	if registry == nil {
		registry = content.Default()
	}

	contactOpts := []contact.Option{contact.WithMetrics(deps.Metrics)}
	if deps.ContactDelay > 0 {
		contactOpts = append(contactOpts, contact.WithDelay(deps.ContactDelay))
	}
	burst := deps.ContactBurst
	if burst <= 0 {
		burst = contact.DefaultBurst
	}
	contactOpts = append(contactOpts, contact.WithRateLimit(deps.ContactRate, burst))

	featuredOpts := []featured.Option{featured.WithMetrics(deps.Metrics)}
	if deps.FeaturedInterval > 0 {
		featuredOpts = append(featuredOpts, featured.WithInterval(deps.FeaturedInterval))
	}

	return []Module{
		pages.New(deps.Base, registry),
		services.New(deps.Base, registry),
		industries.New(deps.Base, registry),
		contact.New(deps.Base, contactOpts...),
		featured.New(deps.Base, registry, featuredOpts...),
	}
}
