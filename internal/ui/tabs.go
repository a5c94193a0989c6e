package ui

import (
	"strings"

	"github.com/kyleking/termkit/internal/capability"
	"github.com/kyleking/termkit/internal/logging"
	"github.com/kyleking/termkit/internal/platform"
)

// TabBarModel is a horizontal tab strip that fires the trigger-haptic
// capability on every tab switch. The pulse is best-effort: a host that
// cannot vibrate gets the no-op fallback and the switch proceeds normally.
type TabBarModel struct {
	Tabs   []string
	active int

	caps     *capability.Registry
	identity platform.Identity
	styles   Styles
}

// NewTabBar creates a tab strip with the first tab active.
func NewTabBar(tabs []string, caps *capability.Registry, id platform.Identity, styles Styles) TabBarModel {
	return TabBarModel{
		Tabs:     tabs,
		caps:     caps,
		identity: id,
		styles:   styles,
	}
}

// Active returns the active tab index.
func (m TabBarModel) Active() int {
	return m.active
}

// SetStyles swaps the themed styles after a scheme change.
func (m *TabBarModel) SetStyles(styles Styles) {
	m.styles = styles
}

// Next switches to the next tab.
func (m *TabBarModel) Next() {
	m.switchTo((m.active + 1) % len(m.Tabs))
}

// Prev switches to the previous tab.
func (m *TabBarModel) Prev() {
	m.switchTo((m.active + len(m.Tabs) - 1) % len(m.Tabs))
}

func (m *TabBarModel) switchTo(index int) {
	if index == m.active {
		return
	}

	m.active = index

	if _, err := m.caps.Invoke(capability.TriggerHaptic, m.identity, nil); err != nil {
		logging.Debug("tab haptic failed", "error", err)
	}
}

// View renders the tab strip with the active tab highlighted.
func (m TabBarModel) View() string {
	rendered := make([]string, 0, len(m.Tabs))

	for i, tab := range m.Tabs {
		style := m.styles.Muted
		if i == m.active {
			style = m.styles.Selected
		}

		rendered = append(rendered, style.Render(" "+tab+" "))
	}

	return strings.Join(rendered, m.styles.Muted.Render("|"))
}
