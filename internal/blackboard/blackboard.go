// Package blackboard provides the shared world state that behavior tree
// closures read and write.
//
// A tree never owns a Blackboard. Execute actions and Conditional predicates
// capture one, so several trees, or a tree and the code observing it, can
// share the same state.
package blackboard

import (
	"maps"
	"sync"
)

// Blackboard is a thread-safe key-value store.
//
// Usage: create with new(Blackboard). The internal map is allocated on the
// first write.
type Blackboard struct {
	mu   sync.RWMutex
	data map[string]any
}

// init allocates the map. Callers must hold the write lock.
func (b *Blackboard) init() {
	if b.data == nil {
		b.data = make(map[string]any)
	}
}

// Get returns the value for key, or nil if there is none.
func (b *Blackboard) Get(key string) any {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.data[key]
}

// Lookup returns the value for key and whether it was present.
func (b *Blackboard) Lookup(key string) (any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.data[key]
	return v, ok
}

// Set stores value under key.
func (b *Blackboard) Set(key string, value any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.init()
	b.data[key] = value
}

// Has reports whether key is present.
func (b *Blackboard) Has(key string) bool {
	_, ok := b.Lookup(key)
	return ok
}

// Delete removes key.
func (b *Blackboard) Delete(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, key)
}

// Keys returns every key, in no particular order.
func (b *Blackboard) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.data == nil {
		return nil
	}
	keys := make([]string, 0, len(b.data))
	for k := range b.data {
		keys = append(keys, k)
	}
	return keys
}

// Clear removes every entry.
func (b *Blackboard) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.data)
}

// Len returns the number of entries.
func (b *Blackboard) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.data)
}

// Snapshot returns a shallow copy of the data. Mutable values (slices, maps,
// pointers) are shared with the blackboard.
func (b *Blackboard) Snapshot() map[string]any {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.data == nil {
		return nil
	}
	return maps.Clone(b.data)
}

// Bool returns the value for key if it is a bool, else false.
func (b *Blackboard) Bool(key string) bool {
	v, _ := b.Get(key).(bool)
	return v
}

// Int returns the value for key if it is an int, else 0.
func (b *Blackboard) Int(key string) int {
	v, _ := b.Get(key).(int)
	return v
}

// Incr adds one to the int stored under key, treating a missing or non-int
// value as 0, and returns the new value.
func (b *Blackboard) Incr(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.init()
	v, _ := b.data[key].(int)
	v++
	b.data[key] = v
	return v
}

// Flag returns a predicate reporting Bool(key), for use with
// behavior.Conditional.
func (b *Blackboard) Flag(key string) func() bool {
	return func() bool { return b.Bool(key) }
}

// SetAction returns an action that stores value under key, for use with
// behavior.Execute.
func (b *Blackboard) SetAction(key string, value any) func() {
	return func() { b.Set(key, value) }
}
