package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	kiterrors "github.com/kyleking/termkit/internal/errors"
)

func TestParseRegistry(t *testing.T) {
	data := []byte(`
tint:
  light: "#000"
  dark: "#fff"
text:
  light: "#111"
  dark: "#eee"
`)

	registry, err := ParseRegistry("custom", data)
	if err != nil {
		t.Fatalf("ParseRegistry failed: %v", err)
	}

	if registry.Name() != "custom" {
		t.Errorf("expected palette name 'custom', got %q", registry.Name())
	}

	colors, ok := registry.Lookup("tint")
	if !ok {
		t.Fatal("expected 'tint' in parsed registry")
	}

	if colors.Light != "#000" || colors.Dark != "#fff" {
		t.Errorf("unexpected tint colors: %+v", colors)
	}
}

func TestParseRegistry_CoverageValidation(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantScheme string
	}{
		{
			name:       "missing dark",
			data:       "tint:\n  light: \"#000\"\n",
			wantScheme: "dark",
		},
		{
			name:       "missing light",
			data:       "tint:\n  dark: \"#fff\"\n",
			wantScheme: "light",
		},
		{
			name:       "whitespace only",
			data:       "tint:\n  light: \"  \"\n  dark: \"#fff\"\n",
			wantScheme: "light",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRegistry("bad", []byte(tt.data))
			if err == nil {
				t.Fatal("expected a coverage error")
			}

			var coverage *kiterrors.CoverageError
			if !errors.As(err, &coverage) {
				t.Fatalf("expected CoverageError, got %T", err)
			}

			if coverage.Scheme != tt.wantScheme {
				t.Errorf("expected scheme %q in error, got %q", tt.wantScheme, coverage.Scheme)
			}
		})
	}
}

func TestParseRegistry_InvalidYAML(t *testing.T) {
	_, err := ParseRegistry("bad", []byte("tint: [not a map"))
	if err == nil {
		t.Fatal("expected a parse error")
	}

	var fileErr *kiterrors.RegistryFileError
	if !errors.As(err, &fileErr) {
		t.Fatalf("expected RegistryFileError, got %T", err)
	}
}

func TestParseRegistry_Empty(t *testing.T) {
	_, err := ParseRegistry("empty", []byte(""))
	if err == nil {
		t.Fatal("expected an error for an empty palette")
	}
}

func TestLoadRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ocean.yml")

	data := "tint:\n  light: \"#000\"\n  dark: \"#fff\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	registry, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry failed: %v", err)
	}

	if registry.Name() != "ocean" {
		t.Errorf("expected palette name from filename, got %q", registry.Name())
	}
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.yml"))
	if err == nil {
		t.Fatal("expected an error for a missing palette file")
	}

	var fileErr *kiterrors.RegistryFileError
	if !errors.As(err, &fileErr) {
		t.Fatalf("expected RegistryFileError, got %T", err)
	}
}
