package templates

import "testing"

func TestTWithoutLocalizerUsesBaseLocale(t *testing.T) {
	t.Parallel()

	if got := T(nil, "core.nav.home"); got != "Home" {
		t.Fatalf("T(nil, core.nav.home) = %q, want Home", got)
	}
}

func TestTMissingKeyRendersKey(t *testing.T) {
	t.Parallel()

	if got := T(nil, "core.no_such_key"); got != "core.no_such_key" {
		t.Fatalf("T(nil, missing) = %q, want key", got)
	}
	if got := T(nil, ""); got != "" {
		t.Fatalf("T(nil, empty) = %q, want empty", got)
	}
}
