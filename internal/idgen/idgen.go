// Package idgen issues unique ids for database entities. Ids are monotonic
// per entity type and backed by a durable counter, so an id is never reused
// even across process restarts or after the entity it named was deleted.
package idgen

import (
	"fmt"
	"sync"
)

// CounterStore atomically increments and persists a named counter.
// Implementations must make Next a single short transactional update.
type CounterStore interface {
	Next(name string) (int64, error)
}

// Factory hands out ids from a CounterStore, serializing callers per entity
// type so that concurrent creation flows never observe the same value.
type Factory struct {
	store CounterStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFactory returns a Factory backed by store.
func NewFactory(store CounterStore) *Factory {
	return &Factory{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// NextID returns the next id for the given entity type. The first id issued
// for a type is 1.
func (f *Factory) NextID(entityType string) (int64, error) {
	lock := f.lockFor(entityType)
	lock.Lock()
	defer lock.Unlock()

	id, err := f.store.Next(entityType)
	if err != nil {
		return 0, fmt.Errorf("next id for %s: %w", entityType, err)
	}
	return id, nil
}

func (f *Factory) lockFor(entityType string) *sync.Mutex {
	f.mu.Lock()
	defer f.mu.Unlock()
	lock, ok := f.locks[entityType]
	if !ok {
		lock = &sync.Mutex{}
		f.locks[entityType] = lock
	}
	return lock
}
