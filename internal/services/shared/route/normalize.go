// Package route holds request path canonicalization shared by HTTP services.
package route

import (
	"net/http"
	"path"
	"strings"
)

// RedirectTrailingSlash canonicalizes request paths by stripping trailing "/"
// characters and collapsing repeated or dot segments. The query string is
// preserved. The target starts with exactly one "/", never "//".
//
// It returns true when a redirect was written. Route handlers should stop further
// processing when true.
func RedirectTrailingSlash(w http.ResponseWriter, r *http.Request) bool {
	if w == nil || r == nil || r.URL == nil {
		return false
	}

	originalPath := r.URL.Path
	canonical := CanonicalPath(originalPath)
	if canonical == originalPath {
		return false
	}
	if r.URL.RawQuery != "" {
		canonical += "?" + r.URL.RawQuery
	}

	http.Redirect(w, r, canonical, http.StatusMovedPermanently)
	return true
}

// CanonicalPath returns the clean, slash-rooted form of p without a trailing
// "/". A leading run of "/" and "\" characters collapses to one "/".
func CanonicalPath(p string) string {
	cleaned := path.Clean("/" + p)
	return "/" + strings.TrimLeft(cleaned, "/\\")
}

// CanonicalPaths redirects GET and HEAD requests for non-canonical paths to
// their canonical form. Other methods pass through untouched so form posts
// are never turned into GETs.
func CanonicalPaths(next http.Handler) http.Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			if RedirectTrailingSlash(w, r) {
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
