// Package i18n resolves the request localizer for web handlers.
package i18n

import (
	"net/http"

	sharedi18n "github.com/risemars/site/internal/services/shared/i18nhttp"
	"golang.org/x/text/message"
)

// Localizer formats catalog messages.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// ResolveLocalizer resolves the request language, persists an explicit
// ?lang= choice, and returns a printer plus the BCP 47 tag for <html lang>.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (Localizer, string) {
	tag, persist := sharedi18n.ResolveTag(r)
	if persist {
		sharedi18n.SetLanguageCookie(w, tag)
	}
	return sharedi18n.Printer(tag), tag.String()
}
