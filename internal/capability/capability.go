// Package capability implements platform-varying behavior dispatch: each
// capability is a table of per-platform implementations plus a mandatory
// fallback, so dispatch can never fail to resolve.
package capability

import (
	"sort"
	"sync"

	kiterrors "github.com/kyleking/termkit/internal/errors"
	"github.com/kyleking/termkit/internal/platform"
)

// Capability names recognized by this system.
const (
	RenderIcon    = "render-icon"
	TriggerHaptic = "trigger-haptic"
	OpenLink      = "open-link"
)

// HandlerFunc implements one platform variant of a capability. Args and
// result are capability-specific.
type HandlerFunc func(args any) (any, error)

// Variant maps platform identities to implementations of one capability.
// Fallback is mandatory: it runs for every identity without an exact match,
// which is why callers never branch on platform themselves.
type Variant struct {
	PerPlatform map[platform.Identity]HandlerFunc
	Fallback    HandlerFunc
}

// handler selects the implementation for an identity: exact match wins,
// fallback otherwise.
func (v Variant) handler(id platform.Identity) HandlerFunc {
	if fn, ok := v.PerPlatform[id]; ok && fn != nil {
		return fn
	}

	return v.Fallback
}

// Registry holds the capability variants registered at startup.
type Registry struct {
	mu       sync.RWMutex
	variants map[string]Variant
}

// NewRegistry creates an empty capability registry.
func NewRegistry() *Registry {
	return &Registry{variants: make(map[string]Variant)}
}

// Register installs a variant table under a capability name. A variant
// without a fallback is rejected here, at build time, so the no-fallback
// condition can never surface during dispatch.
func (r *Registry) Register(name string, v Variant) error {
	if v.Fallback == nil {
		return &kiterrors.InvalidVariantError{Name: name}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.variants[name] = v

	return nil
}

// Invoke runs the capability under the given platform identity. An unknown
// capability name is a configuration error; a missing platform variant is
// not, the fallback runs instead.
func (r *Registry) Invoke(name string, id platform.Identity, args any) (any, error) {
	r.mu.RLock()
	v, ok := r.variants[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &kiterrors.UnknownCapabilityError{Name: name}
	}

	return v.handler(id)(args)
}

// Names returns the sorted registered capability names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.variants))
	for name := range r.variants {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
