package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyleking/termkit/internal/capability"
	"github.com/kyleking/termkit/internal/icons"
	"github.com/kyleking/termkit/internal/platform"
)

// CollapsibleModel is a disclosure section: a header line that toggles the
// visibility of its content. The chevron glyph comes from the render-icon
// capability so it matches the host platform.
type CollapsibleModel struct {
	Title   string
	Content string

	open    bool
	focused bool
	width   int

	caps     *capability.Registry
	identity platform.Identity
	styles   Styles
}

// NewCollapsible creates a closed disclosure section.
func NewCollapsible(title, content string, caps *capability.Registry, id platform.Identity, styles Styles) CollapsibleModel {
	return CollapsibleModel{
		Title:    title,
		Content:  content,
		caps:     caps,
		identity: id,
		styles:   styles,
	}
}

// SetSize updates the section width.
func (m *CollapsibleModel) SetSize(width int) {
	m.width = width
}

// SetFocused updates the focus state.
func (m *CollapsibleModel) SetFocused(focused bool) {
	m.focused = focused
}

// SetStyles swaps the themed styles after a scheme change.
func (m *CollapsibleModel) SetStyles(styles Styles) {
	m.styles = styles
}

// Open reports whether the content is visible.
func (m CollapsibleModel) Open() bool {
	return m.open
}

// Toggle flips the disclosure state.
func (m *CollapsibleModel) Toggle() {
	m.open = !m.open
}

// Update handles key input while focused.
func (m CollapsibleModel) Update(msg tea.Msg) (CollapsibleModel, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", " ":
			m.Toggle()
		}
	}

	return m, nil
}

// View renders the header line plus the content when open.
func (m CollapsibleModel) View() string {
	var b strings.Builder

	header := m.styles.Text
	if m.focused {
		header = m.styles.Selected
	}

	b.WriteString(header.Render(m.chevron() + " " + m.Title))

	if m.open {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.PaddingLeft(2).Render(m.Content))
	}

	return b.String()
}

func (m CollapsibleModel) chevron() string {
	name := icons.ChevronRight
	if m.open {
		name = icons.ChevronDown
	}

	glyph, err := m.caps.Invoke(capability.RenderIcon, m.identity, name)
	if err != nil {
		// render-icon is registered at startup; an error here means the app
		// wiring is broken, so a bare marker is the safest render.
		return "*"
	}

	return glyph.(string)
}
