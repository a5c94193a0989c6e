package theme

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"

	kiterrors "github.com/kyleking/termkit/internal/errors"
)

func testRegistry() *Registry {
	return NewRegistry("test", map[string]TokenColors{
		"tint": {Light: "#000", Dark: "#fff"},
		"text": {Light: "#111", Dark: "#eee"},
	})
}

func TestResolve_RegistryValuePerScheme(t *testing.T) {
	registry := testRegistry()

	tests := []struct {
		name   string
		scheme Scheme
		token  string
		want   lipgloss.Color
	}{
		{"tint dark", Dark, "tint", "#fff"},
		{"tint light", Light, "tint", "#000"},
		{"text dark", Dark, "text", "#eee"},
		{"text light", Light, "text", "#111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveFor(tt.scheme, registry, tt.token, nil)
			if err != nil {
				t.Fatalf("ResolveFor failed: %v", err)
			}

			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestResolve_OverrideWins(t *testing.T) {
	registry := testRegistry()
	override := &Override{Light: "#aaa", Dark: "#bbb"}

	got, err := ResolveFor(Dark, registry, "tint", override)
	if err != nil {
		t.Fatalf("ResolveFor failed: %v", err)
	}

	if got != "#bbb" {
		t.Errorf("expected override value #bbb, got %q", got)
	}

	got, err = ResolveFor(Light, registry, "tint", override)
	if err != nil {
		t.Fatalf("ResolveFor failed: %v", err)
	}

	if got != "#aaa" {
		t.Errorf("expected override value #aaa, got %q", got)
	}
}

func TestResolve_PartialOverrideFallsThrough(t *testing.T) {
	registry := testRegistry()

	// Override only covers dark; under light the registry answers.
	override := &Override{Dark: "#bbb"}

	got, err := ResolveFor(Light, registry, "tint", override)
	if err != nil {
		t.Fatalf("ResolveFor failed: %v", err)
	}

	if got != "#000" {
		t.Errorf("expected registry value #000, got %q", got)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	registry := testRegistry()
	override := &Override{Light: "#aaa"}

	first, err := ResolveFor(Light, registry, "tint", override)
	if err != nil {
		t.Fatalf("ResolveFor failed: %v", err)
	}

	second, err := ResolveFor(Light, registry, "tint", override)
	if err != nil {
		t.Fatalf("ResolveFor failed: %v", err)
	}

	if first != second {
		t.Errorf("identical inputs resolved differently: %q vs %q", first, second)
	}
}

func TestResolve_MissingTokenPropagates(t *testing.T) {
	registry := testRegistry()

	_, err := ResolveFor(Dark, registry, "tints", nil)
	if err == nil {
		t.Fatal("expected an error for a missing token")
	}

	var missing *kiterrors.MissingTokenError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingTokenError, got %T", err)
	}

	if missing.Token != "tints" {
		t.Errorf("expected token 'tints' in error, got %q", missing.Token)
	}

	found := false
	for _, suggestion := range missing.Suggestions {
		if suggestion == "tint" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 'tint' among suggestions, got %v", missing.Suggestions)
	}
}

func TestResolve_OverrideWinsEvenForUnknownToken(t *testing.T) {
	registry := testRegistry()

	// The override short-circuits before the registry lookup.
	got, err := ResolveFor(Dark, registry, "nonexistent", &Override{Dark: "#ccc"})
	if err != nil {
		t.Fatalf("ResolveFor failed: %v", err)
	}

	if got != "#ccc" {
		t.Errorf("expected #ccc, got %q", got)
	}
}

func TestResolver_TracksDetectorScheme(t *testing.T) {
	detector := NewDetector(Dark)
	resolver := NewResolver(detector, testRegistry())

	got, err := resolver.Resolve("tint", nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if got != "#fff" {
		t.Errorf("expected #fff under dark, got %q", got)
	}

	detector.Set(Light)

	got, err = resolver.Resolve("tint", nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if got != "#000" {
		t.Errorf("expected #000 under light, got %q", got)
	}
}

func TestResolver_SetRegistrySwaps(t *testing.T) {
	resolver := NewResolver(NewDetector(Light), testRegistry())

	resolver.SetRegistry(NewRegistry("swapped", map[string]TokenColors{
		"tint": {Light: "#123", Dark: "#456"},
	}))

	got, err := resolver.Resolve("tint", nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if got != "#123" {
		t.Errorf("expected swapped registry value #123, got %q", got)
	}
}
