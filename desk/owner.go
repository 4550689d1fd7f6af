// Package desk owns the in-memory account and pair collections. Every
// mutation goes through an Owner, which serialises writers and tells
// subscribers (persistence, expiry timers) about each new state.
package desk

import (
	"slices"
	"sync"
)

// Command computes the next collection from the current one and reports
// whether anything changed. It receives a private copy and may modify it.
type Command[T any] func(items []T) ([]T, bool)

// Listener observes a changed collection. It runs with the owner locked
// and must not call back into the owner.
type Listener[T any] func(items []T)

type Owner[T any] struct {
	mu        sync.Mutex
	items     []T
	listeners []Listener[T]
}

func NewOwner[T any](initial []T) *Owner[T] {
	return &Owner[T]{items: slices.Clone(initial)}
}

// Get returns a copy of the current collection.
func (o *Owner[T]) Get() []T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return slices.Clone(o.items)
}

// Apply runs cmd against the current collection. When cmd reports a
// change the result becomes the new state and every listener is
// notified in subscription order. The resulting state is returned.
func (o *Owner[T]) Apply(cmd Command[T]) []T {
	o.mu.Lock()
	defer o.mu.Unlock()

	next, changed := cmd(slices.Clone(o.items))
	if !changed {
		return slices.Clone(o.items)
	}
	o.items = next
	for _, l := range o.listeners {
		l(slices.Clone(o.items))
	}
	return slices.Clone(o.items)
}

// Subscribe registers l for every subsequent change.
func (o *Owner[T]) Subscribe(l Listener[T]) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.listeners = append(o.listeners, l)
}
