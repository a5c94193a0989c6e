// Package ui provides themed render primitives and the interaction
// components built on them. Nothing here hardcodes a color: every style is
// resolved through the theme resolver at build time.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kyleking/termkit/internal/theme"
)

// Styles bundles the lipgloss styles for the active scheme. Rebuilt on
// every scheme or registry change rather than mutated.
type Styles struct {
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Link     lipgloss.Style
	Error    lipgloss.Style
	Surface  lipgloss.Style
	Border   lipgloss.Style
	Selected lipgloss.Style
}

// BuildStyles resolves every token the primitives need. A missing token
// propagates: it is a design-time mistake that must surface immediately.
func BuildStyles(res *theme.Resolver) (Styles, error) {
	var s Styles

	tint, err := res.Resolve("tint", nil)
	if err != nil {
		return s, err
	}

	text, err := res.Resolve("text", nil)
	if err != nil {
		return s, err
	}

	muted, err := res.Resolve("muted", nil)
	if err != nil {
		return s, err
	}

	link, err := res.Resolve("link", nil)
	if err != nil {
		return s, err
	}

	errColor, err := res.Resolve("error", nil)
	if err != nil {
		return s, err
	}

	surface, err := res.Resolve("surface", nil)
	if err != nil {
		return s, err
	}

	border, err := res.Resolve("border", nil)
	if err != nil {
		return s, err
	}

	accent, err := res.Resolve("accent", nil)
	if err != nil {
		return s, err
	}

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(tint)
	s.Text = lipgloss.NewStyle().Foreground(text)
	s.Muted = lipgloss.NewStyle().Foreground(muted)
	s.Link = lipgloss.NewStyle().Foreground(link).Underline(true)
	s.Error = lipgloss.NewStyle().Foreground(errColor)
	s.Surface = lipgloss.NewStyle().Background(surface)
	s.Border = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
	s.Selected = lipgloss.NewStyle().Bold(true).Foreground(accent)

	return s, nil
}

// ThemedText renders content in the color resolved for token, honoring an
// optional call-site override.
func ThemedText(res *theme.Resolver, token string, override *theme.Override, content string) (string, error) {
	color, err := res.Resolve(token, override)
	if err != nil {
		return "", err
	}

	return lipgloss.NewStyle().Foreground(color).Render(content), nil
}

// ThemedSurface renders content on the background resolved for token,
// honoring an optional call-site override.
func ThemedSurface(res *theme.Resolver, token string, override *theme.Override, content string) (string, error) {
	color, err := res.Resolve(token, override)
	if err != nil {
		return "", err
	}

	return lipgloss.NewStyle().Background(color).Render(content), nil
}

// Merge composes partial styles in order, later entries overriding earlier
// keys. Unset properties fall through to earlier styles.
func Merge(styles ...lipgloss.Style) lipgloss.Style {
	if len(styles) == 0 {
		return lipgloss.NewStyle()
	}

	merged := styles[len(styles)-1]
	for i := len(styles) - 2; i >= 0; i-- {
		merged = merged.Inherit(styles[i])
	}

	return merged
}
