package pdfsync

import (
	"strings"
	"sync"

	"github.com/rohanthewiz/logger"
)

// Engine is the orchestrator: it consumes raw filesystem events, re-derives
// the directory snapshot from disk, and fans change messages out through its
// registry. It keeps no state between events — every reaction recomputes
// truth with a fresh scan, which is what makes unreliable or coalesced OS
// notifications harmless.
type Engine struct {
	root     string
	registry *Registry
	events   <-chan RawEvent

	wg      sync.WaitGroup
	started bool
}

// NewEngine wires an engine to a registry and a raw event source. The source
// is normally a Watcher's Events channel; tests inject a plain channel of
// synthetic events.
func NewEngine(root string, registry *Registry, events <-chan RawEvent) *Engine {
	return &Engine{
		root:     root,
		registry: registry,
		events:   events,
	}
}

// Registry exposes the engine's observer registry for connection handling.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Snapshot returns a freshly scanned view of the watched directory.
func (e *Engine) Snapshot() []FileDescriptor {
	return Scan(e.root)
}

// Root returns the watched directory path.
func (e *Engine) Root() string {
	return e.root
}

// Start launches the reaction loop. Events are processed strictly one at a
// time in arrival order; the loop ends when the event source is closed.
func (e *Engine) Start() {
	if e.started {
		return
	}
	e.started = true

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		for ev := range e.events {
			e.react(ev)
		}
		logger.Info("Sync engine event loop ended")
	}()
}

// Wait blocks until the reaction loop has drained and exited.
func (e *Engine) Wait() {
	e.wg.Wait()
}

// react handles one raw notification to completion: filter by extension,
// then broadcast the fresh list followed by the affected file's name. The
// list always goes first so a viewer resolves identity before content.
func (e *Engine) react(ev RawEvent) {
	if !strings.HasSuffix(ev.Name, PDFExt) {
		return
	}

	logger.Info("PDF change detected", "file", ev.Name, "op", ev.Op)

	e.registry.Broadcast(ListChanged(Scan(e.root)))
	e.registry.Broadcast(FileChanged(ev.Name))
}
