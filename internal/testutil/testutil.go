// Package testutil provides shared fixtures for resolution-core tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kyleking/termkit/internal/capability"
	"github.com/kyleking/termkit/internal/platform"
	"github.com/kyleking/termkit/internal/theme"
)

// RegistryFixture builds a two-token registry covering both schemes.
func RegistryFixture() *theme.Registry {
	return theme.NewRegistry("fixture", map[string]theme.TokenColors{
		"tint": {Light: "#000", Dark: "#fff"},
		"text": {Light: "#111", Dark: "#eee"},
	})
}

// ResolverFixture builds a resolver over RegistryFixture with the given
// active scheme.
func ResolverFixture(s theme.Scheme) *theme.Resolver {
	return theme.NewResolver(theme.NewDetector(s), RegistryFixture())
}

// CapabilityRecorder registers a capability whose handlers record which
// variant ran. The returned pointer holds the last variant label.
func CapabilityRecorder(t *testing.T, reg *capability.Registry, name string, exact ...platform.Identity) *string {
	t.Helper()

	var ran string

	record := func(label string) capability.HandlerFunc {
		return func(args any) (any, error) {
			ran = label
			return label, nil
		}
	}

	perPlatform := make(map[platform.Identity]capability.HandlerFunc, len(exact))
	for _, id := range exact {
		perPlatform[id] = record(string(id))
	}

	err := reg.Register(name, capability.Variant{
		PerPlatform: perPlatform,
		Fallback:    record("fallback"),
	})
	if err != nil {
		t.Fatalf("registering %s: %v", name, err)
	}

	return &ran
}

// WritePalette writes palette YAML to a temp file and returns its path.
func WritePalette(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "palette.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing palette fixture: %v", err)
	}

	return path
}
