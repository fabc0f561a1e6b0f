package pages

import (
	"testing"

	"github.com/risemars/site/internal/services/web/content"
)

func TestServiceHomeNormalizesFeaturedPosition(t *testing.T) {
	t.Parallel()

	svc := newService(content.Default())
	size := len(content.Default().ListServices())

	tests := []struct {
		raw  string
		want int
	}{
		{raw: "", want: 0},
		{raw: "abc", want: 0},
		{raw: "2", want: 2},
		{raw: " 4 ", want: 4},
		{raw: "-1", want: size - 1},
		{raw: "1000", want: 1000 % size},
	}
	for _, tc := range tests {
		if got := svc.home(tc.raw).Featured.Index; got != tc.want {
			t.Fatalf("home(%q).Featured.Index = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestServiceHomeSelectsLeadingEntries(t *testing.T) {
	t.Parallel()

	view := newService(nil).home("")
	if len(view.Services) != homeServiceCount {
		t.Fatalf("services = %d, want %d", len(view.Services), homeServiceCount)
	}
	if len(view.Industries) != homeIndustryCount {
		t.Fatalf("industries = %d, want %d", len(view.Industries), homeIndustryCount)
	}
	if view.Services[0].Slug != "digital-marketing-strategy" {
		t.Fatalf("first service = %q", view.Services[0].Slug)
	}
}
