// Package app composes web modules into the root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/risemars/site/internal/services/web/module"
)

// ComposeInput carries the modules to mount and the handler serving
// everything no module claims.
type ComposeInput struct {
	Modules []module.Module
	// Extra maps exact paths or prefixes owned by the server itself, such as
	// static assets or the health endpoint.
	Extra map[string]http.Handler
}

// Compose builds a root HTTP handler from modules. Each module is mounted at
// its prefix and, for non-root prefixes, at the slashless alias so
// "/services" reaches the services module.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		if err := mountModule(root, feature.ID(), mount.Handler, prefix, seen); err != nil {
			return nil, err
		}
		if alias := slashlessPrefixAlias(prefix); alias != "" {
			if err := mountModule(root, feature.ID(), mount.Handler, alias, seen); err != nil {
				return nil, err
			}
		}
	}

	for pattern, handler := range input.Extra {
		if handler == nil {
			return nil, fmt.Errorf("handler for %q is nil", pattern)
		}
		if err := mountModule(root, "server", handler, pattern, seen); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func mountModule(root *http.ServeMux, owner string, handler http.Handler, prefix string, seen map[string]string) error {
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", owner, prefix, previous)
	}
	seen[prefix] = owner
	root.Handle(prefix, handler)
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	if strings.Contains(prefix, "{") {
		return fmt.Errorf("prefix must not contain wildcards")
	}
	return nil
}

func slashlessPrefixAlias(prefix string) string {
	return strings.TrimSuffix(prefix, "/")
}
