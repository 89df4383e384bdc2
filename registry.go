package fiberz

import "sync"

// registry tracks the handles of live fibers in creation order. It is
// sized for a handful of fibers: lookups scan linearly and the first
// match wins.
type registry struct {
	mu     sync.Mutex
	live   []Handle
	closed bool
}

// addFiber registers h. It reports false, registering nothing, once the
// registry is closed.
func (r *registry) addFiber(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}
	r.live = append(r.live, h)
	return true
}

// removeFiber reports whether h was registered.
func (r *registry) removeFiber(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, live := range r.live {
		if live == h {
			r.live = append(r.live[:i], r.live[i+1:]...)
			return true
		}
	}
	return false
}

// close closes the registry if it is empty. Otherwise it stays open and
// close returns the live handles.
func (r *registry) close() (live []Handle, closedNow bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.live) > 0 {
		return append([]Handle(nil), r.live...), false
	}
	closedNow = !r.closed
	r.closed = true
	return nil, closedNow
}

func (r *registry) snapshot() []Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Handle(nil), r.live...)
}
