package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	kiterrors "github.com/kyleking/termkit/internal/errors"
)

// maxSuggestions caps the nearest-token hints in a missing-token error.
const maxSuggestions = 3

// Override supplies call-site colors that supersede the registry lookup for
// the scheme they cover. An empty value leaves that scheme to the registry.
// Overrides are scoped to a single resolve call.
type Override struct {
	Light lipgloss.Color
	Dark  lipgloss.Color
}

func (o *Override) value(s Scheme) (lipgloss.Color, bool) {
	if o == nil {
		return "", false
	}

	if s == Dark {
		return o.Dark, o.Dark != ""
	}

	return o.Light, o.Light != ""
}

// Resolver resolves token names to concrete colors for the active scheme.
type Resolver struct {
	detector *Detector
	registry *Registry
}

// NewResolver binds a detector and a registry.
func NewResolver(detector *Detector, registry *Registry) *Resolver {
	return &Resolver{detector: detector, registry: registry}
}

// Registry returns the registry currently consulted by this resolver.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// SetRegistry swaps the registry wholesale, used by hot reload. Resolution
// stays pure in (scheme, override, registry); only the binding changes.
func (r *Resolver) SetRegistry(registry *Registry) {
	r.registry = registry
}

// Resolve returns the color for a token under the active scheme. An
// override value for the active scheme wins over the registry. A token
// missing from the registry is a configuration error and propagates.
func (r *Resolver) Resolve(token string, override *Override) (lipgloss.Color, error) {
	return ResolveFor(r.detector.Scheme(), r.registry, token, override)
}

// ResolveFor is the pure core of Resolve: identical inputs always produce
// identical output, with no hidden state.
func ResolveFor(scheme Scheme, registry *Registry, token string, override *Override) (lipgloss.Color, error) {
	if color, ok := override.value(scheme); ok {
		return color, nil
	}

	colors, ok := registry.Lookup(token)
	if !ok {
		return "", &kiterrors.MissingTokenError{
			Token:       token,
			Palette:     registry.Name(),
			Suggestions: suggestTokens(token, registry.Tokens()),
		}
	}

	return colors.Value(scheme), nil
}

func suggestTokens(token string, known []string) []string {
	matches := fuzzy.Find(token, known)

	suggestions := make([]string, 0, maxSuggestions)
	for _, match := range matches {
		suggestions = append(suggestions, match.Str)
		if len(suggestions) == maxSuggestions {
			break
		}
	}

	return suggestions
}
