package storage

import (
	"encoding/json"
	"log"
	"sync"
)

// MemoryAdapter keeps blobs in a map. It backs tests and lets several
// in-process ledger instances share one adapter the way browser tabs share
// local storage.
type MemoryAdapter struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory returns an empty in-memory adapter.
func NewMemory() *MemoryAdapter {
	return &MemoryAdapter{blobs: make(map[string][]byte)}
}

// Load implements Adapter.
func (a *MemoryAdapter) Load(key string, dst any) bool {
	a.mu.RLock()
	raw, ok := a.blobs[key]
	a.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("storage: discarding undecodable blob under %q: %v", key, err)
		return false
	}
	return true
}

// Save implements Adapter.
func (a *MemoryAdapter) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.blobs[key] = data
	a.mu.Unlock()
	return nil
}

// Delete implements Adapter.
func (a *MemoryAdapter) Delete(key string) error {
	a.mu.Lock()
	delete(a.blobs, key)
	a.mu.Unlock()
	return nil
}
