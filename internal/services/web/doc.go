// Package web serves the Rise Mars brochure site.
//
// It composes the page, catalog, contact and featured-rotation modules behind
// one middleware chain and owns the HTTP server lifecycle.
package web
