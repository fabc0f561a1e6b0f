package featured

import (
	"testing"

	"github.com/risemars/site/internal/services/web/content"
)

func TestServiceViewWrapsIndex(t *testing.T) {
	t.Parallel()

	svc := newService(content.Default())
	size := svc.size()
	if size == 0 {
		t.Fatal("expected services to rotate")
	}

	tests := []struct {
		index int
		want  int
	}{
		{index: 0, want: 0},
		{index: size - 1, want: size - 1},
		{index: size, want: 0},
		{index: -1, want: size - 1},
	}
	for _, tc := range tests {
		view := svc.view(tc.index)
		if view.Index != tc.want {
			t.Fatalf("view(%d).Index = %d, want %d", tc.index, view.Index, tc.want)
		}
		current, ok := view.Current()
		if !ok {
			t.Fatalf("view(%d).Current() missing", tc.index)
		}
		if current.Slug != view.Services[tc.want].Slug {
			t.Fatalf("view(%d) current = %q", tc.index, current.Slug)
		}
	}
}

func TestNewServiceDefaultsRegistry(t *testing.T) {
	t.Parallel()

	if newService(nil).size() != len(content.Default().ListServices()) {
		t.Fatal("nil registry should fall back to the embedded catalog")
	}
}
