// Standalone demo of the parallax header, useful when tuning the
// interpolation stops without running the full app.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyleking/termkit/internal/theme"
	"github.com/kyleking/termkit/internal/ui"
)

type model struct {
	parallax *ui.ParallaxModel
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.parallax.SetSize(msg.Width, msg.Height-1)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m, m.parallax.Update(msg)
}

func (m model) View() string {
	t := ui.HeaderTransform(m.parallax.ScrollOffset(), ui.DefaultHeaderHeight)

	return m.parallax.View() + "\n" +
		fmt.Sprintf("offset=%.0f translateY=%.1f scale=%.2f opacity=%.2f",
			m.parallax.ScrollOffset(), t.TranslateY, t.Scale, t.Opacity)
}

func main() {
	resolver := theme.NewResolver(theme.NewDetector(theme.DetectScheme()), theme.Default())

	styles, err := ui.BuildStyles(resolver)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	content := "Scroll with j/k or the mouse wheel. q quits." +
		strings.Repeat("\nline", 80)

	parallax := ui.NewParallax("PARALLAX", content, styles)
	parallax.SetFocused(true)

	if _, err := tea.NewProgram(model{parallax: parallax}, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
