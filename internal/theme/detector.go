package theme

// Detector owns the active scheme for one rendering context. Changes are
// pushed synchronously to subscribers on the goroutine that calls Set; the
// detector is single-threaded by contract, so subscribers must not block
// and no locking is involved.
type Detector struct {
	scheme Scheme
	nextID int
	subs   map[int]func(Scheme)
}

// NewDetector creates a detector with the given initial scheme, normally
// the result of DetectScheme at startup.
func NewDetector(initial Scheme) *Detector {
	return &Detector{
		scheme: initial,
		subs:   make(map[int]func(Scheme)),
	}
}

// Scheme returns the active scheme.
func (d *Detector) Scheme() Scheme {
	return d.scheme
}

// Subscribe registers a callback invoked on every scheme change. The
// returned cancel removes the subscription.
func (d *Detector) Subscribe(fn func(Scheme)) func() {
	id := d.nextID
	d.nextID++
	d.subs[id] = fn

	return func() {
		delete(d.subs, id)
	}
}

// Set updates the active scheme. Subscribers are notified only when the
// scheme actually changed; Set is the sole mutation path.
func (d *Detector) Set(s Scheme) {
	if s == d.scheme {
		return
	}

	d.scheme = s

	for _, fn := range d.subs {
		fn(s)
	}
}
