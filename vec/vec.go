// File: vec/vec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Vec is a fixed-capacity sequence over caller-provided storage. It never
// allocates; growing past capacity is rejected rather than overwriting.
// Callers who want overwrite-on-full use ring.Buffer.

package vec

import (
	"github.com/momentics/fixcap/api"
	"github.com/momentics/fixcap/storage"
)

// Ensure compile-time interface compliance.
var _ api.Container[int] = (*Vec[int, storage.Slice[int]])(nil)

// Vec is a reject-on-full bounded vector.
//
// Elements at positions [0, Len()) are valid and contiguous; slots past the
// length hold stale data and are never exposed through View. Element types
// must be plain, bitwise-copyable values.
type Vec[T any, S api.Storage[T]] struct {
	store S
	len   int // valid elements, 0 <= len <= Cap()
}

// New creates an empty vector over store. Capacity is the storage view
// length, fixed for the vector's lifetime. The vector takes exclusive
// ownership of store.
func New[T any, S api.Storage[T]](store S) *Vec[T, S] {
	return &Vec[T, S]{store: store}
}

// Cap returns the fixed vector capacity.
func (v *Vec[T, S]) Cap() int {
	return len(v.store.View())
}

// Len returns the number of elements currently held.
func (v *Vec[T, S]) Len() int {
	return v.len
}

// Push appends elem. Returns api.ErrCapacityExceeded if the vector is
// full, leaving it unchanged.
func (v *Vec[T, S]) Push(elem T) error {
	slots := v.store.MutView()
	if v.len == len(slots) {
		return api.ErrCapacityExceeded
	}
	slots[v.len] = elem
	v.len++
	return nil
}

// Pop removes and returns the last element; ok is false on an empty
// vector. The vacated slot keeps its bit pattern but is no longer exposed
// through View.
func (v *Vec[T, S]) Pop() (elem T, ok bool) {
	if v.len == 0 {
		return elem, false
	}
	v.len--
	return v.store.View()[v.len], true
}

// View returns a read-only view of the first Len() elements, in insertion
// order.
func (v *Vec[T, S]) View() []T {
	return v.store.View()[:v.len]
}
