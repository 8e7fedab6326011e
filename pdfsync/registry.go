package pdfsync

import (
	"sync"

	"github.com/rohanthewiz/logger"
)

// Registry tracks the set of currently connected observers and fans
// messages out to them. It retains no message history — an observer that
// connects after a broadcast will not receive it retroactively.
//
// A Registry is constructed per engine rather than held as a package
// singleton so independent engines can run side by side in tests.
type Registry struct {
	mu        sync.RWMutex
	observers map[Observer]bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		observers: make(map[Observer]bool),
	}
}

// Register adds an observer to the active set.
func (r *Registry) Register(obs Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers[obs] = true
}

// Unregister removes an observer. Removing one that was never registered
// (or was already removed) is a no-op.
func (r *Registry) Unregister(obs Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.observers, obs)
}

// Count returns the number of currently registered observers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.observers)
}

// Broadcast delivers msg to every registered observer. Delivery to each
// observer is independent: a refused send (stale or saturated connection)
// is logged and skipped, never surfaced to the caller.
func (r *Registry) Broadcast(msg Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	logger.F("Broadcasting %s to %d observer(s)", msg.Type, len(r.observers))

	for obs := range r.observers {
		if !obs.Send(msg) {
			logger.Log("warn", "Observer refused "+msg.Type+" message, skipping")
		}
	}
}
