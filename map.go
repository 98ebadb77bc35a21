// Copyright 2026 The Atom Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package atom

import "iter"

// smallMapSize is the size up to which Map uses a linear scan instead of a
// hash index. Scanning a handful of one-word keys beats map overhead.
const smallMapSize = 8

type mapEntry[V any] struct {
	key Symbol
	val V
}

// Map is an insertion-ordered map keyed by Symbol. Small maps are a flat
// slice of pairs; once the map outgrows smallMapSize a hash index is built
// alongside the slice, keeping iteration order intact.
//
// Map is not safe for concurrent use.
type Map[V any] struct {
	items []mapEntry[V]
	index map[Symbol]int
}

// NewMap returns an empty Map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{}
}

// NewMapWithCapacity returns an empty Map with room for n entries.
func NewMapWithCapacity[V any](n int) *Map[V] {
	m := &Map[V]{items: make([]mapEntry[V], 0, n)}
	if n > smallMapSize {
		m.index = make(map[Symbol]int, n)
	}
	return m
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.items)
}

func (m *Map[V]) find(k Symbol) int {
	if m.index != nil {
		if i, ok := m.index[k]; ok {
			return i
		}
		return -1
	}
	for i := range m.items {
		if m.items[i].key == k {
			return i
		}
	}
	return -1
}

// Get returns the value stored for k.
func (m *Map[V]) Get(k Symbol) (V, bool) {
	if i := m.find(k); i >= 0 {
		return m.items[i].val, true
	}
	var zero V
	return zero, false
}

// GetString looks up by string content without interning the key: a string
// that was never interned cannot be a key in any Map.
func (m *Map[V]) GetString(s string) (V, bool) {
	if k, ok := Lookup(s); ok {
		return m.Get(k)
	}
	var zero V
	return zero, false
}

// Contains reports whether k is present.
func (m *Map[V]) Contains(k Symbol) bool {
	return m.find(k) >= 0
}

// Set inserts or replaces the value for k. Replacement keeps the entry's
// original position. It returns the previous value, if any.
func (m *Map[V]) Set(k Symbol, v V) (V, bool) {
	if i := m.find(k); i >= 0 {
		old := m.items[i].val
		m.items[i].val = v
		return old, true
	}
	m.items = append(m.items, mapEntry[V]{key: k, val: v})
	if m.index != nil {
		m.index[k] = len(m.items) - 1
	} else if len(m.items) > smallMapSize {
		m.rebuildIndex()
	}
	var zero V
	return zero, false
}

// Delete removes k, preserving the order of the remaining entries. It
// returns the removed value, if any.
func (m *Map[V]) Delete(k Symbol) (V, bool) {
	i := m.find(k)
	if i < 0 {
		var zero V
		return zero, false
	}
	old := m.items[i].val
	m.items = append(m.items[:i], m.items[i+1:]...)
	if len(m.items) <= smallMapSize {
		m.index = nil
	} else {
		m.rebuildIndex()
	}
	return old, true
}

func (m *Map[V]) rebuildIndex() {
	m.index = make(map[Symbol]int, len(m.items))
	for i := range m.items {
		m.index[m.items[i].key] = i
	}
}

// Clear removes all entries.
func (m *Map[V]) Clear() {
	m.items = m.items[:0]
	m.index = nil
}

// All iterates entries in insertion order.
func (m *Map[V]) All() iter.Seq2[Symbol, V] {
	return func(yield func(Symbol, V) bool) {
		for i := range m.items {
			if !yield(m.items[i].key, m.items[i].val) {
				return
			}
		}
	}
}

// Keys iterates keys in insertion order.
func (m *Map[V]) Keys() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for i := range m.items {
			if !yield(m.items[i].key) {
				return
			}
		}
	}
}
