package icons

import (
	"sort"
	"strings"
)

const symbolPrefix = "lucide-"

// Definition describes one sprite icon.
type Definition struct {
	Name        string
	Description string
	// Body is the inner SVG markup on a 24x24 stroked canvas.
	Body string
}

var catalog = []Definition{
	{Name: "strategy", Description: "Strategy and growth.", Body: `<polyline points="22 7 13.5 15.5 8.5 10.5 2 17"/><polyline points="16 7 22 7 22 13"/>`},
	{Name: "search", Description: "Search engine work.", Body: `<circle cx="11" cy="11" r="8"/><path d="m21 21-4.3-4.3"/>`},
	{Name: "target", Description: "Targeted advertising.", Body: `<circle cx="12" cy="12" r="10"/><circle cx="12" cy="12" r="6"/><circle cx="12" cy="12" r="2"/>`},
	{Name: "users", Description: "Audiences and communities.", Body: `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`},
	{Name: "zap", Description: "Paid campaigns.", Body: `<path d="M13 2 3 14h9l-1 8 10-12h-9l1-8z"/>`},
	{Name: "pencil", Description: "Content creation.", Body: `<path d="M17 3a2.85 2.83 0 1 1 4 4L7.5 20.5 2 22l1.5-5.5Z"/><path d="m15 5 4 4"/>`},
	{Name: "code", Description: "Web development.", Body: `<polyline points="16 18 22 12 16 6"/><polyline points="8 6 2 12 8 18"/>`},
	{Name: "mail", Description: "Email.", Body: `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`},
	{Name: "palette", Description: "Brand and design.", Body: `<circle cx="13.5" cy="6.5" r=".5"/><circle cx="17.5" cy="10.5" r=".5"/><circle cx="8.5" cy="7.5" r=".5"/><circle cx="6.5" cy="12.5" r=".5"/><path d="M12 2C6.5 2 2 6.5 2 12s4.5 10 10 10c.926 0 1.648-.746 1.648-1.688 0-.437-.18-.835-.437-1.125-.29-.289-.438-.652-.438-1.125a1.64 1.64 0 0 1 1.668-1.668h1.996c3.051 0 5.555-2.503 5.555-5.554C21.965 6.012 17.461 2 12 2z"/>`},
	{Name: "star", Description: "Influence and reputation.", Body: `<polygon points="12 2 15.09 8.26 22 9.27 17 14.14 18.18 21.02 12 17.77 5.82 21.02 7 14.14 2 9.27 8.91 8.26 12 2"/>`},
	{Name: "lightbulb", Description: "Ideas.", Body: `<path d="M15 14c.2-1 .7-1.7 1.5-2.5 1-.9 1.5-2.2 1.5-3.5A6 6 0 0 0 6 8c0 1 .2 2.2 1.5 3.5.7.7 1.3 1.5 1.5 2.5"/><path d="M9 18h6"/><path d="M10 22h4"/>`},
	{Name: "bar-chart", Description: "Data and results.", Body: `<line x1="12" x2="12" y1="20" y2="10"/><line x1="18" x2="18" y1="20" y2="4"/><line x1="6" x2="6" y1="20" y2="16"/>`},
	{Name: "heart", Description: "Partnership.", Body: `<path d="M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"/>`},
	{Name: "rocket", Description: "Launch.", Body: `<path d="M4.5 16.5c-1.5 1.26-2 5-2 5s3.74-.5 5-2c.71-.84.7-2.13-.09-2.91a2.18 2.18 0 0 0-2.91-.09z"/><path d="m12 15-3-3a22 22 0 0 1 2-3.95A12.88 12.88 0 0 1 22 2c0 2.72-.78 7.5-6 11a22.35 22.35 0 0 1-4 2z"/><path d="M9 12H4s.55-3.03 2-4c1.62-1.08 5 0 5 0"/><path d="M12 15v5s3.03-.55 4-2c1.08-1.62 0-5 0-5"/>`},
	{Name: "award", Description: "Expertise.", Body: `<circle cx="12" cy="8" r="6"/><path d="M15.477 12.89 17 22l-5-3-5 3 1.523-9.11"/>`},
	{Name: "clock", Description: "Responsiveness.", Body: `<circle cx="12" cy="12" r="10"/><polyline points="12 6 12 12 16 14"/>`},
	{Name: "phone", Description: "Telephone.", Body: `<path d="M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72 12.84 12.84 0 0 0 .7 2.81 2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45 12.84 12.84 0 0 0 2.81.7A2 2 0 0 1 22 16.92z"/>`},
	{Name: "map-pin", Description: "Location.", Body: `<path d="M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"/><circle cx="12" cy="10" r="3"/>`},
	{Name: "send", Description: "Submit.", Body: `<path d="m22 2-7 20-4-9-9-4Z"/><path d="M22 2 11 13"/>`},
	{Name: "arrow-right", Description: "Forward.", Body: `<path d="M5 12h14"/><path d="m12 5 7 7-7 7"/>`},
	{Name: "arrow-left", Description: "Back.", Body: `<path d="m12 19-7-7 7-7"/><path d="M19 12H5"/>`},
	{Name: "chevron-down", Description: "Expand menu.", Body: `<path d="m6 9 6 6 6-6"/>`},
	{Name: "circle-check", Description: "Success.", Body: `<path d="M22 11.08V12a10 10 0 1 1-5.93-9.14"/><polyline points="22 4 12 14.01 9 11.01"/>`},
	{Name: "circle-alert", Description: "Problem.", Body: `<circle cx="12" cy="12" r="10"/><line x1="12" x2="12" y1="8" y2="12"/><line x1="12" x2="12.01" y1="16" y2="16"/>`},
	{Name: "menu", Description: "Open navigation.", Body: `<line x1="4" x2="20" y1="12" y2="12"/><line x1="4" x2="20" y1="6" y2="6"/><line x1="4" x2="20" y1="18" y2="18"/>`},
	{Name: "x", Description: "Close.", Body: `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`},
	{Name: "facebook", Description: "Facebook.", Body: `<path d="M18 2h-3a5 5 0 0 0-5 5v3H7v4h3v8h4v-8h3l1-4h-4V7a1 1 0 0 1 1-1h3z"/>`},
	{Name: "twitter", Description: "Twitter.", Body: `<path d="M22 4s-.7 2.1-2 3.4c1.6 10-9.4 17.3-18 11.6 2.2.1 4.4-.6 6-2C3 15.5.5 9.6 3 5c2.2 2.6 5.6 4.1 9 4-.9-4.2 4-6.6 7-3.8 1.1 0 3-1.2 3-1.2z"/>`},
	{Name: "instagram", Description: "Instagram.", Body: `<rect width="20" height="20" x="2" y="2" rx="5" ry="5"/><path d="M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z"/><line x1="17.5" x2="17.51" y1="6.5" y2="6.5"/>`},
	{Name: "linkedin", Description: "LinkedIn.", Body: `<path d="M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-2-2 2 2 0 0 0-2 2v7h-4v-7a6 6 0 0 1 6-6z"/><rect width="4" height="12" x="2" y="9"/><circle cx="4" cy="4" r="2"/>`},
}

var byName = indexCatalog()

// Fallback is rendered for names outside the catalog.
const Fallback = "star"

// Catalog returns a copy of every icon definition.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns the sorted icon names.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for _, def := range catalog {
		out = append(out, def.Name)
	}
	sort.Strings(out)
	return out
}

// Has reports whether name is a known icon.
func Has(name string) bool {
	_, ok := byName[strings.TrimSpace(name)]
	return ok
}

// SymbolID returns the sprite symbol id for name, falling back to Fallback.
func SymbolID(name string) string {
	name = strings.TrimSpace(name)
	if !Has(name) {
		name = Fallback
	}
	return symbolPrefix + name
}

// Sprite returns the hidden SVG sprite holding every icon as a <symbol>.
func Sprite() string {
	return sprite
}

var sprite = buildSprite()

func buildSprite() string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" style="display:none" aria-hidden="true">`)
	for _, def := range catalog {
		b.WriteString(`<symbol id="`)
		b.WriteString(symbolPrefix + def.Name)
		b.WriteString(`" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">`)
		b.WriteString(def.Body)
		b.WriteString(`</symbol>`)
	}
	b.WriteString(`</svg>`)
	return b.String()
}

func indexCatalog() map[string]Definition {
	out := make(map[string]Definition, len(catalog))
	for _, def := range catalog {
		out[def.Name] = def
	}
	return out
}
