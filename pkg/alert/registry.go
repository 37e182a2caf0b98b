package alert

import "sync"

// Registry holds presented alerts until they are dismissed, so an alert
// stays alive after the caller drops its handle.
type Registry struct {
	mu     sync.Mutex
	alerts []*Alert
}

func NewRegistry() *Registry {
	return &Registry{}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry is the process-wide registry.
func DefaultRegistry() *Registry { return defaultRegistry }

func (r *Registry) add(a *Alert) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.alerts {
		if existing == a {
			return
		}
	}
	r.alerts = append(r.alerts, a)
}

func (r *Registry) remove(a *Alert) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.alerts {
		if existing == a {
			r.alerts = append(r.alerts[:i], r.alerts[i+1:]...)
			return
		}
	}
}

// Presented returns the registered alerts in presentation order.
func (r *Registry) Presented() []*Alert {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Alert, len(r.alerts))
	copy(out, r.alerts)
	return out
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.alerts)
}

// Lookup finds a presented alert by ID.
func (r *Registry) Lookup(id string) (*Alert, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.alerts {
		if a.id == id {
			return a, true
		}
	}
	return nil, false
}
