package route

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRedirectTrailingSlash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		wantOK   bool
		wantCode int
		wantLoc  string
	}{
		{
			name:     "no trailing slash",
			path:     "/services",
			wantOK:   false,
			wantCode: 200,
		},
		{
			name:     "trailing slash",
			path:     "/services/",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/services",
		},
		{
			name:     "detail trailing slash",
			path:     "/industries/education/",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/industries/education",
		},
		{
			name:     "repeated slashes",
			path:     "/about//",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/about",
		},
		{
			name:     "query preserved",
			path:     "/?featured=3",
			wantOK:   false,
			wantCode: 200,
		},
		{
			name:     "trailing slash with query",
			path:     "/services/?ref=nav",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/services?ref=nav",
		},
		{
			name:     "root path",
			path:     "/",
			wantOK:   false,
			wantCode: 200,
		},
		{
			name:     "leading double slash stays on host",
			path:     "//evil.example/",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/evil.example",
		},
		{
			name:     "leading double slash with repeated trailing",
			path:     "//evil.example//",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/evil.example",
		},
		{
			name:     "leading double slash without trailing",
			path:     "//evil.example",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/evil.example",
		},
		{
			name:     "dot segments",
			path:     "/services/../about/",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/about",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()

			got := RedirectTrailingSlash(rec, req)
			if got != tc.wantOK {
				t.Fatalf("RedirectTrailingSlash = %v, want %v", got, tc.wantOK)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if got {
				if loc := rec.Header().Get("Location"); loc != tc.wantLoc {
					t.Fatalf("location = %q, want %q", loc, tc.wantLoc)
				}
			}
		})
	}
}

func TestCanonicalPathsOnlyRedirectsSafeMethods(t *testing.T) {
	t.Parallel()

	handler := CanonicalPaths(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "next")
	}))

	tests := []struct {
		method   string
		path     string
		wantCode int
	}{
		{method: http.MethodGet, path: "/contact/", wantCode: http.StatusMovedPermanently},
		{method: http.MethodHead, path: "/contact/", wantCode: http.StatusMovedPermanently},
		{method: http.MethodPost, path: "/contact/", wantCode: http.StatusOK},
		{method: http.MethodGet, path: "/contact", wantCode: http.StatusOK},
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != tc.wantCode {
			t.Fatalf("%s %s status = %d, want %d", tc.method, tc.path, rec.Code, tc.wantCode)
		}
	}
}

func TestCanonicalPathNeverProtocolRelative(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                 "/",
		"/":                "/",
		"///":              "/",
		"//evil.example":   "/evil.example",
		"/\\evil.example/": "/evil.example",
		"/\\/evil.example": "/evil.example",
		"/services/seo/":   "/services/seo",
	}
	for input, want := range tests {
		got := CanonicalPath(input)
		if got != want {
			t.Fatalf("CanonicalPath(%q) = %q, want %q", input, got, want)
		}
		if strings.HasPrefix(got, "//") || strings.HasPrefix(got, "/\\") {
			t.Fatalf("CanonicalPath(%q) = %q is protocol-relative", input, got)
		}
	}
}
