// Package modules defines web module registry helpers.
package modules

import (
	"time"

	"github.com/risemars/site/internal/services/web/content"
	module "github.com/risemars/site/internal/services/web/module"
	"github.com/risemars/site/internal/services/web/platform/observability"
	"github.com/risemars/site/internal/services/web/platform/publichandler"
	"golang.org/x/time/rate"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the shared handler base and tuning the site modules
// are composed from. Zero durations and limits fall back to module defaults.
type Dependencies struct {
	Base     publichandler.Base
	Registry *content.Registry
	Metrics  *observability.Metrics

	ContactDelay     time.Duration
	ContactRate      rate.Limit
	ContactBurst     int
	FeaturedInterval time.Duration
}
