package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	kiterrors "github.com/kyleking/termkit/internal/errors"
)

// tokenEntry is the YAML shape of one token: a light/dark pair.
type tokenEntry struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// LoadRegistry reads a palette file. The schema is a flat token table:
//
//	text:       {light: "#4c4f69", dark: "#cad3f5"}
//	background: {light: "#eff1f5", dark: "#24273a"}
//
// Every token must carry both scheme values; partial coverage is a
// configuration error, not a warning.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &kiterrors.RegistryFileError{Path: path, Err: err}
	}

	return ParseRegistry(paletteName(path), data)
}

// ParseRegistry parses palette YAML into a validated registry.
func ParseRegistry(name string, data []byte) (*Registry, error) {
	var entries map[string]tokenEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, &kiterrors.RegistryFileError{Path: name, Err: fmt.Errorf("failed to parse palette: %w", err)}
	}

	if len(entries) == 0 {
		return nil, &kiterrors.RegistryFileError{Path: name, Err: fmt.Errorf("palette defines no tokens")}
	}

	tokens := make(map[string]TokenColors, len(entries))

	for token, entry := range entries {
		if strings.TrimSpace(entry.Light) == "" {
			return nil, &kiterrors.CoverageError{Token: token, Scheme: Light.String()}
		}

		if strings.TrimSpace(entry.Dark) == "" {
			return nil, &kiterrors.CoverageError{Token: token, Scheme: Dark.String()}
		}

		tokens[token] = TokenColors{
			Light: lipglossColor(entry.Light),
			Dark:  lipglossColor(entry.Dark),
		}
	}

	return NewRegistry(name, tokens), nil
}

func lipglossColor(value string) lipgloss.Color {
	return lipgloss.Color(strings.TrimSpace(value))
}

func paletteName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
