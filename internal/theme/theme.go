// Package theme provides the color-resolution core: named token registries,
// light/dark scheme detection, and call-site resolution with overrides.
package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Scheme identifies the appearance mode. Exactly one scheme is active for a
// rendering context at any instant.
type Scheme int

const (
	Light Scheme = iota
	Dark
)

func (s Scheme) String() string {
	if s == Dark {
		return "dark"
	}

	return "light"
}

// TokenColors holds the per-scheme values of one color token. Both values
// are required: a token defined for light must be defined for dark.
type TokenColors struct {
	Light lipgloss.Color
	Dark  lipgloss.Color
}

// Value returns the color for the given scheme.
func (t TokenColors) Value(s Scheme) lipgloss.Color {
	if s == Dark {
		return t.Dark
	}

	return t.Light
}

// Registry is an immutable token table for one named palette, loaded once
// at startup. Hot reload replaces the whole Registry, never mutates one.
type Registry struct {
	name   string
	tokens map[string]TokenColors
}

// NewRegistry builds a registry from a token table. The table is copied so
// later mutation of the argument cannot reach the registry.
func NewRegistry(name string, tokens map[string]TokenColors) *Registry {
	copied := make(map[string]TokenColors, len(tokens))
	for token, colors := range tokens {
		copied[token] = colors
	}

	return &Registry{name: name, tokens: copied}
}

// Name returns the palette name.
func (r *Registry) Name() string {
	return r.name
}

// Lookup returns the per-scheme colors for a token.
func (r *Registry) Lookup(token string) (TokenColors, bool) {
	colors, ok := r.tokens[token]
	return colors, ok
}

// Tokens returns the sorted token names, used for error suggestions.
func (r *Registry) Tokens() []string {
	names := make([]string, 0, len(r.tokens))
	for token := range r.tokens {
		names = append(names, token)
	}

	sort.Strings(names)

	return names
}

// Latte and Macchiato Catppuccin values, paired per token.

// Default returns the built-in palette used when no theme file is supplied.
func Default() *Registry {
	return NewRegistry("catppuccin", map[string]TokenColors{
		"text":       {Light: "#4c4f69", Dark: "#cad3f5"},
		"background": {Light: "#eff1f5", Dark: "#24273a"},
		"surface":    {Light: "#e6e9ef", Dark: "#1e2030"},
		"tint":       {Light: "#8839ef", Dark: "#c6a0f6"},
		"accent":     {Light: "#179299", Dark: "#8bd5ca"},
		"muted":      {Light: "#7c7f93", Dark: "#939ab7"},
		"border":     {Light: "#acb0be", Dark: "#5b6078"},
		"link":       {Light: "#1e66f5", Dark: "#8aadf4"},
		"error":      {Light: "#d20f39", Dark: "#ed8796"},
	})
}

// Builtin returns a built-in palette by name, or false if none matches.
func Builtin(name string) (*Registry, bool) {
	switch name {
	case "", "catppuccin", "default":
		return Default(), true
	case "mono":
		return NewRegistry("mono", map[string]TokenColors{
			"text":       {Light: "235", Dark: "252"},
			"background": {Light: "255", Dark: "233"},
			"surface":    {Light: "254", Dark: "235"},
			"tint":       {Light: "240", Dark: "250"},
			"accent":     {Light: "238", Dark: "254"},
			"muted":      {Light: "245", Dark: "243"},
			"border":     {Light: "250", Dark: "240"},
			"link":       {Light: "240", Dark: "250"},
			"error":      {Light: "232", Dark: "255"},
		}), true
	}

	return nil, false
}
