package content

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestDefaultServicesInCanonicalOrder(t *testing.T) {
	t.Parallel()

	want := []string{
		"digital-marketing-strategy",
		"seo",
		"sem",
		"social-media-management",
		"ppc-advertising",
		"content-creation",
		"website-design",
		"email-marketing",
		"brand-identity",
		"influencer-marketing",
	}
	got := Default().ListServices()
	if len(got) != len(want) {
		t.Fatalf("services = %d, want %d", len(got), len(want))
	}
	for i, slug := range want {
		if got[i].Slug != slug {
			t.Fatalf("services[%d] = %q, want %q", i, got[i].Slug, slug)
		}
	}
}

func TestDefaultServiceIconRefs(t *testing.T) {
	t.Parallel()

	want := map[string]string{
		"digital-marketing-strategy": "strategy",
		"seo":                        "search",
		"sem":                        "target",
		"social-media-management":    "users",
		"ppc-advertising":            "zap",
		"content-creation":           "pencil",
		"website-design":             "code",
		"email-marketing":            "mail",
		"brand-identity":             "palette",
		"influencer-marketing":       "star",
	}
	for _, svc := range Default().ListServices() {
		if svc.IconRef != want[svc.Slug] {
			t.Fatalf("%s icon = %q, want %q", svc.Slug, svc.IconRef, want[svc.Slug])
		}
	}
}

func TestDefaultIndustriesInCanonicalOrder(t *testing.T) {
	t.Parallel()

	want := []string{"ecommerce", "real-estate", "health-wellness", "education", "tech-startups", "local-businesses"}
	got := Default().ListIndustries()
	if len(got) != len(want) {
		t.Fatalf("industries = %d, want %d", len(got), len(want))
	}
	for i, slug := range want {
		if got[i].Slug != slug {
			t.Fatalf("industries[%d] = %q, want %q", i, got[i].Slug, slug)
		}
	}
}

func TestDefaultEntriesAreComplete(t *testing.T) {
	t.Parallel()

	for _, svc := range Default().ListServices() {
		if svc.Name == "" || svc.ShortDescription == "" || svc.IconRef == "" || svc.ImageURL == "" {
			t.Fatalf("service %q has empty fields: %+v", svc.Slug, svc)
		}
		if !strings.Contains(svc.BodyHTML, "<h2>") || !strings.Contains(svc.BodyHTML, "<li><strong>") {
			t.Fatalf("service %q body not rendered as structured HTML: %q", svc.Slug, svc.BodyHTML)
		}
	}
	for _, ind := range Default().ListIndustries() {
		if ind.Name == "" || ind.ImageURL == "" {
			t.Fatalf("industry %q has empty fields: %+v", ind.Slug, ind)
		}
		if !strings.Contains(ind.BodyHTML, "<ul>") {
			t.Fatalf("industry %q body missing list: %q", ind.Slug, ind.BodyHTML)
		}
	}
}

func TestListServicesReturnsCopy(t *testing.T) {
	t.Parallel()

	reg := Default()
	list := reg.ListServices()
	list[0].Name = "mutated"
	if reg.ListServices()[0].Name == "mutated" {
		t.Fatal("ListServices exposed registry storage")
	}
}

func TestFindBySlug(t *testing.T) {
	t.Parallel()

	services := Default().ListServices()
	for _, svc := range services {
		got, ok := FindBySlug(services, svc.Slug)
		if !ok || got.Name != svc.Name {
			t.Fatalf("FindBySlug(%q) = %+v, %v", svc.Slug, got, ok)
		}
	}
	for _, slug := range []string{"", "SEO", "seo ", "unknown-service", "ecommerce"} {
		if _, ok := FindBySlug(services, slug); ok {
			t.Fatalf("FindBySlug(%q) matched, want miss", slug)
		}
	}
	if _, ok := Default().Industry("ecommerce"); !ok {
		t.Fatal("Industry(ecommerce) missed")
	}
	if _, ok := Default().Service("ecommerce"); ok {
		t.Fatal("Service(ecommerce) matched an industry slug")
	}
}

func TestNeighbors(t *testing.T) {
	t.Parallel()

	industries := Default().ListIndustries()
	prev, next, ok := Neighbors(industries, "ecommerce")
	if !ok || prev != nil || next == nil || next.Slug != "real-estate" {
		t.Fatalf("Neighbors(first) = %v, %v, %v", prev, next, ok)
	}
	prev, next, ok = Neighbors(industries, "education")
	if !ok || prev == nil || prev.Slug != "health-wellness" || next == nil || next.Slug != "tech-startups" {
		t.Fatalf("Neighbors(middle) = %v, %v, %v", prev, next, ok)
	}
	prev, next, ok = Neighbors(industries, "local-businesses")
	if !ok || prev == nil || prev.Slug != "tech-startups" || next != nil {
		t.Fatalf("Neighbors(last) = %v, %v, %v", prev, next, ok)
	}
	if _, _, ok := Neighbors(industries, "missing"); ok {
		t.Fatal("Neighbors(missing) reported ok")
	}
}

func TestRelatedSkipsCurrentEntry(t *testing.T) {
	t.Parallel()

	services := Default().ListServices()
	got := Related(services, "seo", 3)
	want := []string{"digital-marketing-strategy", "sem", "social-media-management"}
	if len(got) != len(want) {
		t.Fatalf("Related = %d entries, want %d", len(got), len(want))
	}
	for i, slug := range want {
		if got[i].Slug != slug {
			t.Fatalf("Related[%d] = %q, want %q", i, got[i].Slug, slug)
		}
	}
	if got := Related(services, "seo", 0); got != nil {
		t.Fatalf("Related(n=0) = %v, want nil", got)
	}
}

func TestFirstClampsCount(t *testing.T) {
	t.Parallel()

	services := Default().ListServices()
	if got := First(services, 6); len(got) != 6 {
		t.Fatalf("First(6) = %d", len(got))
	}
	if got := First(services, 100); len(got) != len(services) {
		t.Fatalf("First(100) = %d, want %d", len(got), len(services))
	}
	if got := First(services, -1); len(got) != 0 {
		t.Fatalf("First(-1) = %d, want 0", len(got))
	}
}

const validIndustries = `industries:
  - slug: retail
    name: Retail
    image: https://example.com/retail.jpg
    body: Stores.
`

func TestLoadRejectsInvalidTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		services string
	}{
		{
			name: "duplicate slug",
			services: `services:
  - {slug: seo, name: SEO, description: d, icon: search, image: i, body: b}
  - {slug: seo, name: SEO again, description: d, icon: search, image: i, body: b}
`,
		},
		{
			name: "slug not url safe",
			services: `services:
  - {slug: "Search Engine", name: SEO, description: d, icon: search, image: i, body: b}
`,
		},
		{
			name: "unknown icon",
			services: `services:
  - {slug: seo, name: SEO, description: d, icon: dragon, image: i, body: b}
`,
		},
		{
			name: "missing body",
			services: `services:
  - {slug: seo, name: SEO, description: d, icon: search, image: i}
`,
		},
		{
			name:     "empty table",
			services: "services: []\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fsys := fstest.MapFS{
				"services.yaml":   {Data: []byte(tc.services)},
				"industries.yaml": {Data: []byte(validIndustries)},
			}
			_, err := Load(fsys)
			if !errors.Is(err, ErrInvalidTable) {
				t.Fatalf("Load() error = %v, want ErrInvalidTable", err)
			}
		})
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"services.yaml": {Data: []byte(`services:
  - {slug: seo, name: SEO, description: d, icon: search, image: i, body: b, price: 10}
`)},
		"industries.yaml": {Data: []byte(validIndustries)},
	}
	if _, err := Load(fsys); err == nil {
		t.Fatal("expected decode error for unknown field")
	}
}

func TestLoadDropsRawHTML(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"services.yaml": {Data: []byte(`services:
  - slug: seo
    name: SEO
    description: d
    icon: search
    image: i
    body: |
      Intro <script>alert(1)</script>
`)},
		"industries.yaml": {Data: []byte(validIndustries)},
	}
	reg, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	svc, _ := reg.Service("seo")
	if strings.Contains(svc.BodyHTML, "<script>") {
		t.Fatalf("BodyHTML kept raw html: %q", svc.BodyHTML)
	}
}
