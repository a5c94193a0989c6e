package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyleking/termkit/internal/browser"
	"github.com/kyleking/termkit/internal/capability"
	"github.com/kyleking/termkit/internal/haptics"
	"github.com/kyleking/termkit/internal/icons"
	"github.com/kyleking/termkit/internal/platform"
	"github.com/kyleking/termkit/internal/theme"
)

func testStyles(t *testing.T) Styles {
	t.Helper()

	resolver := theme.NewResolver(theme.NewDetector(theme.Light), theme.Default())

	styles, err := BuildStyles(resolver)
	if err != nil {
		t.Fatalf("BuildStyles failed: %v", err)
	}

	return styles
}

func testCaps(t *testing.T) *capability.Registry {
	t.Helper()

	reg := capability.NewRegistry()

	for name, v := range map[string]capability.Variant{
		capability.RenderIcon:    icons.Variant(),
		capability.TriggerHaptic: haptics.Variant(),
		capability.OpenLink:      browser.Variant(),
	} {
		if err := reg.Register(name, v); err != nil {
			t.Fatalf("Register %s failed: %v", name, err)
		}
	}

	return reg
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestCollapsible_TogglesWhenFocused(t *testing.T) {
	m := NewCollapsible("Routing", "file-based", testCaps(t), platform.Other, testStyles(t))
	m.SetFocused(true)

	if m.Open() {
		t.Fatal("expected a new section to start closed")
	}

	m, _ = m.Update(enterKey())

	if !m.Open() {
		t.Error("expected enter to open the section")
	}

	m, _ = m.Update(enterKey())

	if m.Open() {
		t.Error("expected enter to close the section again")
	}
}

func TestCollapsible_IgnoresInputWhenUnfocused(t *testing.T) {
	m := NewCollapsible("Routing", "file-based", testCaps(t), platform.Other, testStyles(t))

	m, _ = m.Update(enterKey())

	if m.Open() {
		t.Error("expected an unfocused section to ignore input")
	}
}

func TestCollapsible_ViewShowsContentOnlyWhenOpen(t *testing.T) {
	m := NewCollapsible("Routing", "file-based", testCaps(t), platform.Other, testStyles(t))

	if strings.Contains(m.View(), "file-based") {
		t.Error("expected closed section to hide content")
	}

	m.Toggle()

	view := m.View()
	if !strings.Contains(view, "file-based") {
		t.Error("expected open section to show content")
	}

	if !strings.Contains(view, "Routing") {
		t.Error("expected the title in the view")
	}
}

func TestCollapsible_ChevronTracksPlatform(t *testing.T) {
	m := NewCollapsible("Routing", "file-based", testCaps(t), platform.Other, testStyles(t))

	// The fallback glyph set is ASCII.
	if !strings.Contains(m.View(), ">") {
		t.Errorf("expected ASCII chevron for the other identity, got %q", m.View())
	}

	m.Toggle()

	if !strings.Contains(m.View(), "v") {
		t.Errorf("expected open chevron, got %q", m.View())
	}
}
