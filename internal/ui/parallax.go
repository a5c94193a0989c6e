package ui

import (
	"math"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultHeaderHeight is the resting header height in rows.
const DefaultHeaderHeight = 8

// parallaxFactor is how much slower the header scrolls than the content.
const parallaxFactor = 0.75

// Offset is the scroll position owned by one scroll view. The view is the
// single writer; derived-transform computation may read it concurrently
// from another goroutine, so the value is published atomically and the
// last write is the one readers see. No locking is needed.
type Offset struct {
	bits atomic.Uint64
}

// Store publishes a new offset. Only the owning view calls this.
func (o *Offset) Store(v float64) {
	o.bits.Store(math.Float64bits(v))
}

// Load returns the latest published offset.
func (o *Offset) Load() float64 {
	return math.Float64frombits(o.bits.Load())
}

// Transform holds the derived header values for one offset. All fields are
// pure functions of (offset, headerHeight).
type Transform struct {
	TranslateY float64
	Scale      float64
	Opacity    float64
}

// HeaderTransform derives the parallax transform for an offset. It is
// side-effect-free and touches no shared state, so it is safe to run
// concurrently with offset production.
func HeaderTransform(offset, headerHeight float64) Transform {
	if headerHeight <= 0 {
		return Transform{Scale: 1, Opacity: 1}
	}

	in := [3]float64{-headerHeight, 0, headerHeight}

	return Transform{
		TranslateY: interpolate(offset, in, [3]float64{-headerHeight / 2, 0, headerHeight * parallaxFactor}),
		Scale:      interpolate(offset, in, [3]float64{2, 1, 1}),
		Opacity:    interpolate(offset, in, [3]float64{1, 1, 0.35}),
	}
}

// interpolate maps x through a clamped piecewise-linear curve defined by
// three input/output stops.
func interpolate(x float64, in, out [3]float64) float64 {
	switch {
	case x <= in[0]:
		return out[0]
	case x >= in[2]:
		return out[2]
	case x <= in[1]:
		return out[0] + (x-in[0])/(in[1]-in[0])*(out[1]-out[0])
	default:
		return out[1] + (x-in[1])/(in[2]-in[1])*(out[2]-out[1])
	}
}

// ParallaxModel is a scrollable view with a header that scrolls slower than
// the content and dims as it leaves the screen. The model owns the offset;
// everything else derives from it.
type ParallaxModel struct {
	Header string

	headerHeight int
	width        int
	height       int
	focused      bool

	offset   Offset
	viewport viewport.Model
	styles   Styles
}

// NewParallax creates a parallax view with the given header and content.
func NewParallax(header, content string, styles Styles) *ParallaxModel {
	vp := viewport.New(0, 0)
	vp.SetContent(content)

	return &ParallaxModel{
		Header:       header,
		headerHeight: DefaultHeaderHeight,
		viewport:     vp,
		styles:       styles,
	}
}

// SetSize updates the view dimensions; the viewport gets whatever the
// header does not currently occupy.
func (m *ParallaxModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(1, height-m.visibleHeaderRows())
}

// SetFocused updates the focus state.
func (m *ParallaxModel) SetFocused(focused bool) {
	m.focused = focused
}

// SetStyles swaps the themed styles after a scheme change.
func (m *ParallaxModel) SetStyles(styles Styles) {
	m.styles = styles
}

// ScrollOffset returns the latest published offset. Safe to call from a
// rendering goroutine.
func (m *ParallaxModel) ScrollOffset() float64 {
	return m.offset.Load()
}

// Update feeds scroll events to the viewport and republishes the offset.
func (m *ParallaxModel) Update(msg tea.Msg) tea.Cmd {
	if !m.focused {
		return nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.offset.Store(float64(m.viewport.YOffset))
	m.viewport.Height = max(1, m.height-m.visibleHeaderRows())

	return cmd
}

// View renders the dimming header above the scrolled content.
func (m *ParallaxModel) View() string {
	t := HeaderTransform(m.offset.Load(), float64(m.headerHeight))

	style := m.styles.Title
	if t.Opacity < 0.7 {
		style = m.styles.Muted
	}

	header := lipgloss.NewStyle().
		Width(m.width).
		Height(m.visibleHeaderRows()).
		Render(style.Render(m.Header))

	return header + "\n" + m.viewport.View()
}

// visibleHeaderRows converts the derived translation into rows still on
// screen: the header recedes at (1 - parallaxFactor) of the scroll speed.
func (m *ParallaxModel) visibleHeaderRows() int {
	offset := m.offset.Load()
	t := HeaderTransform(offset, float64(m.headerHeight))

	gone := offset - t.TranslateY
	if gone < 0 {
		gone = 0
	}

	rows := m.headerHeight - int(gone+0.5)
	if rows < 1 {
		rows = 1
	}

	return rows
}
