// Package convert implements the converter registry: a table of direct
// (from, to) media type pairs mapped to conversion functions.
//
// Lookups are exact-pair only. A registry never composes converters, so
// registering A→B and B→C does not make A→C available.
package convert

import (
	"sync"

	"github.com/gaurav-prasanna/partstream/core"
)

// Func converts content from one media type to another.
// Converters are expected to be pure and fast; the registry does not
// check either property.
type Func func(content string) (string, error)

// Pure adapts an infallible string transform into a Func.
func Pure(fn func(string) string) Func {
	return func(content string) (string, error) {
		return fn(content), nil
	}
}

// Pair is an ordered (from, to) key.
type Pair struct {
	From core.MediaType
	To   core.MediaType
}

// Registry maps pairs to converters. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	converters map[Pair]Func
	order      []Pair // first-registration order
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{converters: make(map[Pair]Func)}
}

// Register stores fn for the (from, to) pair, replacing any converter
// already registered for it. A nil fn is ignored.
func (r *Registry) Register(from, to core.MediaType, fn Func) {
	if fn == nil {
		return
	}
	key := Pair{From: from, To: to}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.converters[key]; !exists {
		r.order = append(r.order, key)
	}
	r.converters[key] = fn
}

// Lookup returns the converter registered for exactly (from, to).
// The boolean is false when none is registered; that is a normal result.
func (r *Registry) Lookup(from, to core.MediaType) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.converters[Pair{From: from, To: to}]
	return fn, ok
}

// Pairs returns the registered pairs in the order they were first registered.
func (r *Registry) Pairs() []Pair {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pairs := make([]Pair, len(r.order))
	copy(pairs, r.order)
	return pairs
}

// Len returns the number of registered pairs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
