package static

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerServesEmbeddedAssets(t *testing.T) {
	t.Parallel()

	handler := Handler("/static/")
	tests := []struct {
		method      string
		path        string
		wantStatus  int
		wantType    string
		wantContain string
	}{
		{method: http.MethodGet, path: "/static/site.css", wantStatus: http.StatusOK, wantType: "text/css", wantContain: ".featured-card"},
		{method: http.MethodGet, path: "/static/site.js", wantStatus: http.StatusOK, wantType: "javascript", wantContain: "EventSource"},
		{method: http.MethodGet, path: "/static/missing.js", wantStatus: http.StatusNotFound},
		{method: http.MethodGet, path: "/static/", wantStatus: http.StatusNotFound},
		{method: http.MethodPost, path: "/static/site.css", wantStatus: http.StatusMethodNotAllowed},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != tc.wantStatus {
			t.Fatalf("%s %s status = %d, want %d", tc.method, tc.path, rr.Code, tc.wantStatus)
		}
		if tc.wantType != "" && !strings.Contains(rr.Header().Get("Content-Type"), tc.wantType) {
			t.Fatalf("%s Content-Type = %q", tc.path, rr.Header().Get("Content-Type"))
		}
		if tc.wantContain != "" && !strings.Contains(rr.Body.String(), tc.wantContain) {
			t.Fatalf("%s body missing %q", tc.path, tc.wantContain)
		}
	}
}

func TestScriptReleasesFeaturedStream(t *testing.T) {
	t.Parallel()

	script, err := FS.ReadFile("site.js")
	if err != nil {
		t.Fatalf("read site.js: %v", err)
	}
	for _, want := range []string{"pagehide", "featuredStream.close()", "removeEventListener(\"scroll\""} {
		if !strings.Contains(string(script), want) {
			t.Fatalf("site.js missing %q", want)
		}
	}
}
