// Package ordered implements an insertion-ordered map type.
//
// Workflow documents care about key order in places where Go's built-in map
// cannot help: the trigger map, the job map, and `with:` argument maps all
// emit keys in the order they were first set. Map preserves that order
// through YAML marshaling.
package ordered

import (
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v2"
)

var _ yaml.Marshaler = (*Map[string, any])(nil)

// Map is an order-preserving map. Keys keep the position they had when first
// set, regardless of later updates or deletions of other keys.
type Map[K comparable, V any] struct {
	items []Tuple[K, V]
	index map[K]int
}

// MapSS is a convenience alias to reduce keyboard wear.
type MapSS = Map[string, string]

// MapSA is a convenience alias to reduce keyboard wear.
type MapSA = Map[string, any]

// NewMap returns a new empty map with a given initial capacity.
func NewMap[K comparable, V any](cap int) *Map[K, V] {
	return &Map[K, V]{
		items: make([]Tuple[K, V], 0, cap),
		index: make(map[K]int, cap),
	}
}

// MapFromItems creates a Map with some items.
func MapFromItems[K comparable, V any](ps ...Tuple[K, V]) *Map[K, V] {
	m := NewMap[K, V](len(ps))
	for _, p := range ps {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Len returns the number of items in the map.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.index)
}

// IsZero reports if m is nil or empty.
func (m *Map[K, V]) IsZero() bool {
	return m == nil || len(m.index) == 0
}

// Get retrieves the value associated with a key, and reports if it was found.
func (m *Map[K, V]) Get(k K) (V, bool) {
	var zv V
	if m == nil {
		return zv, false
	}
	idx, ok := m.index[k]
	if !ok {
		return zv, false
	}
	return m.items[idx].Value, true
}

// Contains reports if the map contains the key.
func (m *Map[K, V]) Contains(k K) bool {
	if m == nil {
		return false
	}
	_, has := m.index[k]
	return has
}

// Set sets the value for the given key. If the key exists, it remains in its
// existing spot, otherwise it is added to the end of the map.
func (m *Map[K, V]) Set(k K, v V) {
	// Suppose someone makes Map with new(Map). The one thing we need to not be
	// nil will be nil.
	if m.index == nil {
		m.index = make(map[K]int, 1)
	}

	// Replace existing value?
	if idx, exists := m.index[k]; exists {
		m.items[idx].Value = v
		return
	}

	// Append new item.
	m.index[k] = len(m.items)
	m.items = append(m.items, Tuple[K, V]{
		Key:   k,
		Value: v,
	})
}

// Delete deletes a key from the map. It does nothing if the key is not in the
// map.
func (m *Map[K, V]) Delete(k K) {
	if m == nil {
		return
	}
	idx, ok := m.index[k]
	if !ok {
		return
	}
	m.items[idx].deleted = true
	delete(m.index, k)

	// If half the pairs have been deleted, perform a compaction.
	if len(m.items) >= 2*len(m.index) {
		m.compact()
	}
}

// Equal reports if the two maps are equal (they contain the same items in the
// same order). Keys are compared directly; values are compared using go-cmp
// (provided with Equal[string, any] and Equal[string, string] as comparers).
func Equal[K comparable, V any](a, b *Map[K, V]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Len() != b.Len() {
		return false
	}
	i, j := 0, 0
	for i < len(a.items) && j < len(b.items) {
		for a.items[i].deleted {
			i++
		}
		for b.items[j].deleted {
			j++
		}
		if a.items[i].Key != b.items[j].Key {
			return false
		}
		if !cmp.Equal(a.items[i].Value, b.items[j].Value, cmp.Comparer(Equal[string, string]), cmp.Comparer(Equal[string, any])) {
			return false
		}
		i++
		j++
	}
	return true
}

// EqualSS is a convenience alias to reduce keyboard wear.
var EqualSS = Equal[string, string]

// EqualSA is a convenience alias to reduce keyboard wear.
var EqualSA = Equal[string, any]

// compact re-organises the internal storage of the Map.
func (m *Map[K, V]) compact() {
	pairs := make([]Tuple[K, V], 0, len(m.index))
	for _, p := range m.items {
		if p.deleted {
			continue
		}
		m.index[p.Key] = len(pairs)
		pairs = append(pairs, Tuple[K, V]{
			Key:   p.Key,
			Value: p.Value,
		})
	}
	m.items = pairs
}

// Range ranges over the map (in order). If f returns an error, it stops
// ranging and returns that error.
func (m *Map[K, V]) Range(f func(k K, v V) error) error {
	if m.IsZero() {
		return nil
	}
	for _, p := range m.items {
		if p.deleted {
			continue
		}
		if err := f(p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// MarshalYAML returns the map as a yaml.MapSlice, preserving item order.
// Values are passed through as-is; nested marshalers are the encoder's
// business.
func (m *Map[K, V]) MarshalYAML() (any, error) {
	doc := make(yaml.MapSlice, 0, m.Len())
	err := m.Range(func(k K, v V) error {
		doc = append(doc, yaml.MapItem{Key: k, Value: v})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}
