// Package routepath stores canonical HTTP paths for the site and resolves a
// request path to the view that serves it.
package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root               = "/"
	About              = "/about"
	Services           = "/services"
	ServicesPrefix     = "/services/"
	ServiceDetail      = ServicesPrefix + "{slug}"
	Industries         = "/industries"
	IndustriesPrefix   = "/industries/"
	IndustryDetail     = IndustriesPrefix + "{slug}"
	Contact            = "/contact"
	ContactPrefix      = "/contact/"
	PrivacyPolicy      = "/privacy-policy"
	Terms              = "/terms"
	Featured           = "/featured"
	FeaturedPrefix     = "/featured/"
	FeaturedStream     = "/featured/stream"
	FeaturedIndexParam = "index"
	FeaturedFromParam  = "from"
	HomeFeaturedParam  = "featured"
	StaticPrefix       = "/static/"
	Health             = "/up"
	Metrics            = "/metrics"
	SlugPathValue      = "slug"
)

// View identifies the page (or auxiliary endpoint) a path resolves to.
type View string

const (
	ViewHome           View = "home"
	ViewAbout          View = "about"
	ViewServices       View = "services"
	ViewServiceDetail  View = "service_detail"
	ViewIndustries     View = "industries"
	ViewIndustryDetail View = "industry_detail"
	ViewContact        View = "contact"
	ViewPrivacy        View = "privacy"
	ViewTerms          View = "terms"
	ViewNotFound       View = "not_found"
	ViewFeatured       View = "featured"
	ViewFeaturedStream View = "featured_stream"
	ViewStatic         View = "static"
	ViewHealth         View = "health"
	ViewMetrics        View = "metrics"
)

// Match is the result of resolving a path.
type Match struct {
	View View
	Slug string
}

var literalViews = map[string]View{
	Root:           ViewHome,
	About:          ViewAbout,
	Services:       ViewServices,
	Industries:     ViewIndustries,
	Contact:        ViewContact,
	PrivacyPolicy:  ViewPrivacy,
	Terms:          ViewTerms,
	Featured:       ViewFeatured,
	FeaturedStream: ViewFeaturedStream,
	Health:         ViewHealth,
	Metrics:        ViewMetrics,
}

// Resolve maps a request path to a view. Literal paths win over the two
// parameterized detail paths; anything else is ViewNotFound. Resolve does not
// consult the content registry: an unknown slug still resolves to a detail
// view, whose handler redirects to the listing.
func Resolve(path string) Match {
	if view, ok := literalViews[path]; ok {
		return Match{View: view}
	}
	if strings.HasPrefix(path, StaticPrefix) && len(path) > len(StaticPrefix) {
		return Match{View: ViewStatic}
	}
	if slug, ok := singleSegment(path, ServicesPrefix); ok {
		return Match{View: ViewServiceDetail, Slug: slug}
	}
	if slug, ok := singleSegment(path, IndustriesPrefix); ok {
		return Match{View: ViewIndustryDetail, Slug: slug}
	}
	return Match{View: ViewNotFound}
}

func singleSegment(path, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(path, prefix)
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	return rest, true
}

// InServices reports whether the view belongs to the services section.
func (v View) InServices() bool {
	return v == ViewServices || v == ViewServiceDetail
}

// InIndustries reports whether the view belongs to the industries section.
func (v View) InIndustries() bool {
	return v == ViewIndustries || v == ViewIndustryDetail
}

// Service returns the service detail route.
func Service(slug string) string {
	return ServicesPrefix + escapeSegment(slug)
}

// Industry returns the industry detail route.
func Industry(slug string) string {
	return IndustriesPrefix + escapeSegment(slug)
}

// FeaturedAt returns the featured card fragment route for index.
func FeaturedAt(index int) string {
	return Featured + "?" + FeaturedIndexParam + "=" + strconv.Itoa(index)
}

// FeaturedStreamFrom returns the featured rotation stream route starting after index.
func FeaturedStreamFrom(index int) string {
	return FeaturedStream + "?" + FeaturedFromParam + "=" + strconv.Itoa(index)
}

// HomeWithFeatured returns the home route pinned to a featured index.
func HomeWithFeatured(index int) string {
	return Root + "?" + HomeFeaturedParam + "=" + strconv.Itoa(index)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
