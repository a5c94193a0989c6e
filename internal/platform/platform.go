// Package platform exposes the host platform identity used for capability
// dispatch. The identity is read once from the environment at startup and
// never changes for the process lifetime.
package platform

import (
	"os"
	"strings"
	"sync"
)

// Identity tags the host platform an app instance is serving.
type Identity string

const (
	IOS     Identity = "ios"
	Android Identity = "android"
	Web     Identity = "web"
	Other   Identity = "other"
)

// EnvVar is the environment variable carrying the host platform tag.
const EnvVar = "TERMKIT_PLATFORM"

var current = sync.OnceValue(func() Identity {
	return Parse(os.Getenv(EnvVar))
})

// Current returns the process platform identity. The first call reads the
// host tag; later calls return the same value.
func Current() Identity {
	return current()
}

// Parse maps a raw platform tag to a known Identity. Unknown or empty tags
// map to Other so dispatch always has a defined identity to match against.
func Parse(tag string) Identity {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "ios":
		return IOS
	case "android":
		return Android
	case "web":
		return Web
	}

	return Other
}
