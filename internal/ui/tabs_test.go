package ui

import (
	"strings"
	"testing"

	"github.com/kyleking/termkit/internal/capability"
	"github.com/kyleking/termkit/internal/platform"
)

func recordingCaps(t *testing.T) (*capability.Registry, *int) {
	t.Helper()

	pulses := 0

	reg := capability.NewRegistry()
	err := reg.Register(capability.TriggerHaptic, capability.Variant{
		Fallback: func(args any) (any, error) {
			pulses++
			return nil, nil
		},
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	return reg, &pulses
}

func TestTabBar_NextWrapsAndPulses(t *testing.T) {
	caps, pulses := recordingCaps(t)
	m := NewTabBar([]string{"A", "B", "C"}, caps, platform.Other, testStyles(t))

	m.Next()
	m.Next()
	m.Next()

	if m.Active() != 0 {
		t.Errorf("expected wrap back to 0, got %d", m.Active())
	}

	if *pulses != 3 {
		t.Errorf("expected a pulse per switch, got %d", *pulses)
	}
}

func TestTabBar_NoPulseWithoutSwitch(t *testing.T) {
	caps, pulses := recordingCaps(t)
	m := NewTabBar([]string{"Only"}, caps, platform.Other, testStyles(t))

	m.Next()

	if *pulses != 0 {
		t.Errorf("expected no pulse when the active tab did not change, got %d", *pulses)
	}
}

func TestTabBar_Prev(t *testing.T) {
	caps, _ := recordingCaps(t)
	m := NewTabBar([]string{"A", "B", "C"}, caps, platform.Other, testStyles(t))

	m.Prev()

	if m.Active() != 2 {
		t.Errorf("expected prev from 0 to wrap to 2, got %d", m.Active())
	}
}

func TestTabBar_ViewShowsAllTabs(t *testing.T) {
	caps, _ := recordingCaps(t)
	m := NewTabBar([]string{"Explore", "Links"}, caps, platform.Other, testStyles(t))

	view := m.View()
	for _, tab := range m.Tabs {
		if !strings.Contains(view, tab) {
			t.Errorf("expected %q in the tab strip", tab)
		}
	}
}
