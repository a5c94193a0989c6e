// Package haptics implements the trigger-haptic capability. A pulse is a
// best-effort attention signal delegated to the host terminal; it never
// blocks the caller and never reports failure past this boundary.
package haptics

import (
	"io"
	"os"

	"github.com/kyleking/termkit/internal/capability"
	"github.com/kyleking/termkit/internal/logging"
	"github.com/kyleking/termkit/internal/platform"
)

// bell is the host "vibrate" primitive available to a terminal process.
const bell = "\a"

// output holds the pulse destination. Overridden in tests to avoid ringing
// the terminal the tests run in.
var output io.Writer = os.Stdout

// Pulse writes one bell to the host. Exposed for direct use by components
// that already know a pulse applies on this platform.
func Pulse(w io.Writer) error {
	_, err := io.WriteString(w, bell)
	return err
}

func firePulse(args any) (any, error) {
	// Fire-and-forget: the host failing to ring is logged, never surfaced.
	go func() {
		if err := Pulse(output); err != nil {
			logging.Debug("haptic pulse failed", "error", err)
		}
	}()

	return nil, nil
}

func noPulse(args any) (any, error) {
	return nil, nil
}

// Variant returns the trigger-haptic dispatch table. Only the mobile
// identities have a vibrate primitive; everything else is a silent no-op,
// so callers never branch on platform before asking for a pulse.
func Variant() capability.Variant {
	return capability.Variant{
		PerPlatform: map[platform.Identity]capability.HandlerFunc{
			platform.IOS:     firePulse,
			platform.Android: firePulse,
		},
		Fallback: noPulse,
	}
}
