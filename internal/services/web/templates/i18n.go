package templates

import (
	"github.com/risemars/site/internal/platform/i18n/catalog"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// fallback renders copy in the catalog's base locale when a component is
// rendered without a request localizer.
var fallback = message.NewPrinter(catalog.Default().Tags()[0])

// T returns the copy for key. Keys missing from the catalog render as the
// key itself so gaps show up on the page.
func T(loc Localizer, key string, args ...any) string {
	if key == "" {
		return ""
	}
	if loc == nil {
		loc = fallback
	}
	return loc.Sprintf(key, args...)
}
