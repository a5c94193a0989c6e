// Package icons implements the render-icon capability: the same logical
// icon name renders a different glyph depending on the host platform, with
// a plain-ASCII fallback for hosts without symbol fonts.
package icons

import (
	"fmt"

	"github.com/kyleking/termkit/internal/capability"
	"github.com/kyleking/termkit/internal/platform"
)

// Logical icon names recognized across all glyph sets.
const (
	Home         = "home"
	Send         = "send"
	Code         = "code"
	ChevronRight = "chevron-right"
	ChevronDown  = "chevron-down"
	Link         = "link"
)

// unknownGlyph renders for icon names outside the table; rendering an icon
// is never an error.
const unknownGlyph = "?"

var symbolGlyphs = map[string]string{
	Home:         "⌂",
	Send:         "➤",
	Code:         "</>",
	ChevronRight: "›",
	ChevronDown:  "⌄",
	Link:         "↗",
}

var emojiGlyphs = map[string]string{
	Home:         "🏠",
	Send:         "📤",
	Code:         "💻",
	ChevronRight: "▸",
	ChevronDown:  "▾",
	Link:         "🔗",
}

var asciiGlyphs = map[string]string{
	Home:         "#",
	Send:         ">>",
	Code:         "</>",
	ChevronRight: ">",
	ChevronDown:  "v",
	Link:         "->",
}

// Glyph renders an icon name from one glyph set.
func Glyph(set map[string]string, name string) string {
	if glyph, ok := set[name]; ok {
		return glyph
	}

	return unknownGlyph
}

func renderFrom(set map[string]string) capability.HandlerFunc {
	return func(args any) (any, error) {
		name, ok := args.(string)
		if !ok {
			return nil, fmt.Errorf("render-icon expects a string icon name, got %T", args)
		}

		return Glyph(set, name), nil
	}
}

// Variant returns the render-icon dispatch table: symbol glyphs on the
// mobile identities, emoji on web, ASCII everywhere else.
func Variant() capability.Variant {
	return capability.Variant{
		PerPlatform: map[platform.Identity]capability.HandlerFunc{
			platform.IOS:     renderFrom(symbolGlyphs),
			platform.Android: renderFrom(symbolGlyphs),
			platform.Web:     renderFrom(emojiGlyphs),
		},
		Fallback: renderFrom(asciiGlyphs),
	}
}
