// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer is a fixed-capacity circular buffer over caller-provided storage.
// It never allocates and never rejects a push; old elements are overwritten
// once the buffer is full. Callers who need reject-on-full use vec.Vec.

package ring

import (
	"github.com/momentics/fixcap/api"
	"github.com/momentics/fixcap/storage"
)

// Ensure compile-time interface compliance.
var _ api.Container[int] = (*Buffer[int, storage.Slice[int]])(nil)

// Buffer is an overwrite-on-full circular buffer.
//
// Element types must be plain, bitwise-copyable values: elements are copied
// on push and silently overwritten after wraparound with no per-element
// cleanup.
type Buffer[T any, S api.Storage[T]] struct {
	store S
	index int // next write slot, 0 <= index < Cap()
	len   int // valid elements, 0 <= len <= Cap()
}

// New creates an empty buffer over store. Capacity is the storage view
// length, fixed for the buffer's lifetime. The buffer takes exclusive
// ownership of store.
func New[T any, S api.Storage[T]](store S) *Buffer[T, S] {
	return &Buffer[T, S]{store: store}
}

// Cap returns the fixed buffer capacity.
func (b *Buffer[T, S]) Cap() int {
	return len(b.store.View())
}

// Len returns the number of elements currently retained.
func (b *Buffer[T, S]) Len() int {
	return b.len
}

// Push writes elem into the slot at the current write index, overwriting
// any prior value there, and advances the index modulo capacity. While the
// buffer is not yet full the length grows; afterwards each push discards
// the element previously held in the written slot.
//
// Push on a zero-capacity buffer is a guaranteed no-op.
func (b *Buffer[T, S]) Push(elem T) {
	slots := b.store.MutView()
	if len(slots) == 0 {
		return
	}
	if b.len < len(slots) {
		b.len++
	}
	slots[b.index] = elem
	b.index = (b.index + 1) % len(slots)
}

// View returns a read-only view of the Len() retained elements.
//
// Until the buffer first fills, slots are written left to right from slot 0,
// so the view is in push order, oldest first. Once the buffer has filled,
// the view exposes the full storage span in storage-slot order, which is
// not insertion order: the oldest element is no longer guaranteed to come
// first. Callers needing chronological order after wraparound must track
// the write position themselves.
func (b *Buffer[T, S]) View() []T {
	return b.store.View()[:b.len]
}
