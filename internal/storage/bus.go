package storage

import "sync"

// Bus fans key-change notifications out between viewers sharing one
// adapter. A viewer never receives its own writes; notifications only
// reach the other viewers, so a single writer never observes its own echo.
type Bus struct {
	mu      sync.Mutex
	nextID  int
	viewers map[int]*Viewer
}

// NewBus returns a bus with no viewers.
func NewBus() *Bus {
	return &Bus{viewers: make(map[int]*Viewer)}
}

// Join registers a new viewer on the bus.
func (b *Bus) Join() *Viewer {
	b.mu.Lock()
	defer b.mu.Unlock()
	v := &Viewer{bus: b, id: b.nextID}
	b.viewers[v.id] = v
	b.nextID++
	return v
}

// Viewer is one participant on a Bus, typically one ledger instance.
type Viewer struct {
	bus *Bus
	id  int

	mu       sync.Mutex
	handlers []func(key string)
}

// OnChange registers fn to run whenever another viewer publishes a change.
func (v *Viewer) OnChange(fn func(key string)) {
	v.mu.Lock()
	v.handlers = append(v.handlers, fn)
	v.mu.Unlock()
}

// Publish notifies every other viewer that the blob under key changed.
// Delivery is synchronous on the caller's goroutine.
func (v *Viewer) Publish(key string) {
	v.bus.mu.Lock()
	targets := make([]*Viewer, 0, len(v.bus.viewers))
	for id, other := range v.bus.viewers {
		if id != v.id {
			targets = append(targets, other)
		}
	}
	v.bus.mu.Unlock()

	for _, t := range targets {
		t.notify(key)
	}
}

// Leave removes the viewer from the bus. Further publishes by others no
// longer reach it.
func (v *Viewer) Leave() {
	v.bus.mu.Lock()
	delete(v.bus.viewers, v.id)
	v.bus.mu.Unlock()
}

func (v *Viewer) notify(key string) {
	v.mu.Lock()
	handlers := append(([]func(string))(nil), v.handlers...)
	v.mu.Unlock()
	for _, fn := range handlers {
		fn(key)
	}
}
