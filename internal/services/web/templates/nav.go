package templates

import (
	"github.com/risemars/site/internal/services/web/content"
	"github.com/risemars/site/internal/services/web/routepath"
)

// NavItem is one header navigation entry.
type NavItem struct {
	Label string
	Href  string
	// Active marks the section the current view belongs to.
	Active bool
	// Current marks the exact page being shown.
	Current  bool
	Children []NavChild
}

// NavChild is one dropdown entry under a section.
type NavChild struct {
	Label   string
	Href    string
	Current bool
}

// NavItems builds the header navigation for view. Home is active only on the
// root view; Services and Industries stay active on their detail views.
func NavItems(loc Localizer, view routepath.View, slug string, chrome Chrome) []NavItem {
	services := make([]NavChild, 0, len(chrome.Services))
	for _, entry := range chrome.Services {
		services = append(services, NavChild{
			Label:   entry.Name,
			Href:    routepath.Service(entry.Slug),
			Current: view == routepath.ViewServiceDetail && entry.Slug == slug,
		})
	}
	industries := make([]NavChild, 0, len(chrome.Industries))
	for _, entry := range chrome.Industries {
		industries = append(industries, NavChild{
			Label:   entry.Name,
			Href:    routepath.Industry(entry.Slug),
			Current: view == routepath.ViewIndustryDetail && entry.Slug == slug,
		})
	}
	return []NavItem{
		{Label: T(loc, "core.nav.home"), Href: routepath.Root, Active: view == routepath.ViewHome, Current: view == routepath.ViewHome},
		{Label: T(loc, "core.nav.about"), Href: routepath.About, Active: view == routepath.ViewAbout, Current: view == routepath.ViewAbout},
		{Label: T(loc, "core.nav.services"), Href: routepath.Services, Active: view.InServices(), Current: view == routepath.ViewServices, Children: services},
		{Label: T(loc, "core.nav.industries"), Href: routepath.Industries, Active: view.InIndustries(), Current: view == routepath.ViewIndustries, Children: industries},
		{Label: T(loc, "core.nav.contact"), Href: routepath.Contact, Active: view == routepath.ViewContact, Current: view == routepath.ViewContact},
	}
}

// Chrome carries the data every page's header and footer need.
type Chrome struct {
	AppName    string
	Services   []content.ServiceEntry
	Industries []content.IndustryEntry
	Year       int
}

// footerServiceCount is how many services the footer lists.
const footerServiceCount = 5

type socialLink struct {
	Icon  string
	Label string
	Href  string
}

var socialLinks = []socialLink{
	{Icon: "facebook", Label: "Facebook", Href: "https://facebook.com"},
	{Icon: "twitter", Label: "Twitter", Href: "https://twitter.com"},
	{Icon: "instagram", Label: "Instagram", Href: "https://instagram.com"},
	{Icon: "linkedin", Label: "LinkedIn", Href: "https://linkedin.com"},
}
