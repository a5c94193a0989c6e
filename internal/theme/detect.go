package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SchemeEnvVar lets the host pin the appearance scheme explicitly,
// bypassing terminal background detection.
const SchemeEnvVar = "TERMKIT_SCHEME"

// DetectScheme returns the appearance scheme reported by the host
// environment: the env override if set, otherwise the terminal background.
// A host that cannot report a preference gets light, never an error.
func DetectScheme() Scheme {
	if env := os.Getenv(SchemeEnvVar); env != "" {
		if s, ok := ParseScheme(env); ok {
			return s
		}
	}

	if lipgloss.HasDarkBackground() {
		return Dark
	}

	return Light
}

// ParseScheme maps a scheme tag to a Scheme, reporting unrecognized tags.
func ParseScheme(tag string) (Scheme, bool) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "light":
		return Light, true
	case "dark":
		return Dark, true
	}

	return Light, false
}
