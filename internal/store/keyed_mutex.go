package store

import (
	"sync"

	"github.com/google/uuid"
)

type keyedEntry struct {
	mu   sync.Mutex
	refs int
}

// KeyedMutex hands out one exclusive section per key. Entries are dropped
// once nobody holds or waits for them.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*keyedEntry
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{entries: make(map[uuid.UUID]*keyedEntry)}
}

// Lock blocks until the section for key is free and returns its unlock func.
func (km *KeyedMutex) Lock(key uuid.UUID) (unlock func()) {
	km.mu.Lock()
	e, ok := km.entries[key]
	if !ok {
		e = &keyedEntry{}
		km.entries[key] = e
	}
	e.refs++
	km.mu.Unlock()

	e.mu.Lock()
	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()
			km.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(km.entries, key)
			}
			km.mu.Unlock()
		})
	}
}

// Len returns the number of keys currently held or awaited.
func (km *KeyedMutex) Len() int {
	km.mu.Lock()
	defer km.mu.Unlock()
	return len(km.entries)
}
